package students

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"tuition-center/app/billing"
	"tuition-center/app/config"
	"tuition-center/app/database"
	"tuition-center/app/models"
	"tuition-center/app/validation"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	var (
		students []*models.Student
		err      error
	)
	if classID := c.Query("class_id"); classID != "" {
		students, err = database.GetStudentsByClass(db, classID)
	} else {
		students, err = database.GetAllStudents(db)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(student)
}

// GetStudentCycleAPI returns the student's current billing window. The cycle
// starts at the latest payment's cycle start, falling back to the enrollment
// date for students who have never paid; completed sessions are counted from
// attendance (present days only) and the end date is recomputed from the
// inputs on every call rather than read from storage.
func GetStudentCycleAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	studentID := c.Params("id")

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	latest, err := database.GetLatestPaymentByStudent(db, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	var cycleStart time.Time
	var cycleType billing.CycleType
	if latest != nil {
		cycleStart = latest.CycleStart
		cycleType = billing.CycleType(latest.CycleType)
	} else {
		cycleStart = student.EnrolledAt
		if student.Class != nil {
			cycleType = billing.CycleType(student.Class.CycleType)
		}
	}

	completed, err := database.CountCompletedSessions(db, studentID, cycleStart)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to count sessions"})
	}

	cycle := billing.Cycle{
		StartDate:         cycleStart,
		CycleType:         cycleType,
		CompletedSessions: completed,
	}

	return c.JSON(fiber.Map{
		"student_id": studentID,
		"cycle":      cycle,
		"end_date":   cycle.EndDate().Format("2006-01-02"),
		"expired":    cycle.Expired(time.Now()),
	})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	type StudentRequest struct {
		Name       string `json:"name" validate:"required,min=2,max=100"`
		Phone      string `json:"phone" validate:"omitempty,max=20"`
		ClassID    string `json:"class_id" validate:"required,uuid"`
		EnrolledAt string `json:"enrolled_at"`
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	enrolledAt := time.Now()
	if req.EnrolledAt != "" {
		parsed, err := time.Parse("2006-01-02", req.EnrolledAt)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid enrolled_at date. Use YYYY-MM-DD"})
		}
		enrolledAt = parsed
	}

	student := &models.Student{
		Name:       req.Name,
		Phone:      req.Phone,
		ClassID:    req.ClassID,
		EnrolledAt: enrolledAt,
	}
	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student: " + err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	student.ID = c.Params("id")
	if err := validation.Struct(student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateStudent(config.GetDB(), &student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student: " + err.Error()})
	}
	return c.JSON(student)
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudent(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student: " + err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
