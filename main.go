package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/google/uuid"

	"tuition-center/app/config"
	"tuition-center/app/database"
	"tuition-center/app/routes/attendance"
	"tuition-center/app/routes/classes"
	"tuition-center/app/routes/payments"
	settingsroutes "tuition-center/app/routes/settings"
	"tuition-center/app/routes/students"
	"tuition-center/app/services"
	"tuition-center/app/settings"
)

// apiErrorHandler turns unhandled errors into JSON responses.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// All schedule matching and cycle math runs in center-local time
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Ho_Chi_Minh location, falling back to UTC+7: %v", err)
		time.Local = time.FixedZone("ICT", 7*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	config.LoadEnv()
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	services.StartScheduler(config.GetDB())

	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		return c.Next()
	})

	// One settings store for the whole process; every handler reads through
	// its cache and writes invalidate it.
	store := settings.NewStore(&database.SettingsRepo{DB: config.GetDB()})

	classes.SetupClassesRoutes(app)
	students.SetupStudentsRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	payments.SetupPaymentsRoutes(app)
	settingsroutes.SetupSettingsRoutes(app, store)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("Starting server on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
