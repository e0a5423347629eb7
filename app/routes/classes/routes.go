package classes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes")

	api.Get("/", GetClassesAPI)
	api.Get("/today", GetClassesTodayAPI)
	api.Post("/", CreateClassAPI)
	api.Get("/:id", GetClassAPI)
	api.Put("/:id", UpdateClassAPI)
	api.Delete("/:id", DeleteClassAPI)
}
