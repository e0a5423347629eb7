package classes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"tuition-center/app/billing"
	"tuition-center/app/config"
	"tuition-center/app/database"
	"tuition-center/app/models"
	"tuition-center/app/schedule"
	"tuition-center/app/validation"
)

func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}

	return c.JSON(fiber.Map{
		"classes": classes,
		"count":   len(classes),
	})
}

// GetClassesTodayAPI returns the classes whose schedule text matches today
// (or ?date=YYYY-MM-DD). Classes with unparseable schedules are simply not
// matched, never an error.
func GetClassesTodayAPI(c *fiber.Ctx) error {
	ref := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
		ref = parsed
	}

	classes, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}

	var scheduled []*models.Class
	for _, class := range classes {
		if schedule.IsScheduledOn(class.Schedule, ref) {
			scheduled = append(scheduled, class)
		}
	}

	return c.JSON(fiber.Map{
		"classes": scheduled,
		"count":   len(scheduled),
		"date":    ref.Format("2006-01-02"),
	})
}

func GetClassAPI(c *fiber.Ctx) error {
	class, err := database.GetClassByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	return c.JSON(class)
}

func CreateClassAPI(c *fiber.Ctx) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !billing.CycleType(class.CycleType).Known() {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown cycle type: " + class.CycleType})
	}

	if err := database.CreateClass(config.GetDB(), &class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class: " + err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(class)
}

func UpdateClassAPI(c *fiber.Ctx) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	class.ID = c.Params("id")
	if err := validation.Struct(class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !billing.CycleType(class.CycleType).Known() {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown cycle type: " + class.CycleType})
	}

	if err := database.UpdateClass(config.GetDB(), &class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class: " + err.Error()})
	}
	return c.JSON(class)
}

func DeleteClassAPI(c *fiber.Ctx) error {
	if err := database.DeleteClass(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class: " + err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
