package attendance

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	attcore "tuition-center/app/attendance"
	"tuition-center/app/config"
	"tuition-center/app/database"
	"tuition-center/app/models"
	"tuition-center/app/validation"
)

// MarkAttendanceAPI records one student's attendance for one day. Re-marking
// the same (student, date) overwrites the previous status.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	type AttendanceRequest struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		Date      string `json:"date" validate:"required"`
		Status    string `json:"status" validate:"required"`
	}

	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	recorder := attcore.NewRecorder(&database.AttendanceRepo{DB: config.GetDB()})
	record, err := recorder.Mark(req.StudentID, models.AttendanceStatus(req.Status), date)
	if err != nil {
		var invalid attcore.ErrInvalidStatus
		if errors.As(err, &invalid) {
			return c.Status(400).JSON(fiber.Map{"error": invalid.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance record: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":    "Attendance record saved successfully",
		"attendance": record,
		"label":      record.StatusLabel(),
	})
}

// GetAttendanceByClassAndDateAPI returns one class's records for one day.
func GetAttendanceByClassAndDateAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")
	dateStr := c.Params("date")

	if classID == "" || dateStr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class ID and date are required"})
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	records, err := database.GetAttendanceByClassAndDate(config.GetDB(), classID, date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
		"date":       dateStr,
		"class_id":   classID,
	})
}

// GetStudentAttendanceSummaryAPI returns a student's attendance counts,
// optionally from a given date (?from=YYYY-MM-DD).
func GetStudentAttendanceSummaryAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if studentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student ID is required"})
	}

	from := time.Time{}
	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid from date. Use YYYY-MM-DD"})
		}
		from = parsed
	}

	summary, err := database.GetStudentAttendanceSummary(config.GetDB(), studentID, from)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance summary"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"student_id": studentID,
		"summary":    summary,
	})
}
