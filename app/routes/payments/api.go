package payments

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"tuition-center/app/billing"
	"tuition-center/app/config"
	"tuition-center/app/database"
	"tuition-center/app/models"
	"tuition-center/app/validation"
)

// CreatePaymentAPI records a payment and opens a new billing cycle. The cycle
// end date is computed here from the start date and cycle type, never
// supplied by the client.
func CreatePaymentAPI(c *fiber.Ctx) error {
	type PaymentRequest struct {
		StudentID  string `json:"student_id" validate:"required,uuid"`
		Amount     int64  `json:"amount" validate:"required,gt=0"`
		CycleStart string `json:"cycle_start" validate:"required"`
		CycleType  string `json:"cycle_type" validate:"required"`
	}

	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	cycleStart, err := time.Parse("2006-01-02", req.CycleStart)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid cycle_start date. Use YYYY-MM-DD"})
	}

	cycleType := billing.CycleType(req.CycleType)
	if !cycleType.Known() {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown cycle type: " + req.CycleType})
	}

	payment := &models.Payment{
		StudentID:  req.StudentID,
		Amount:     req.Amount,
		CycleStart: cycleStart,
		CycleEnd:   billing.ComputeEndDate(cycleStart, cycleType, 0),
		CycleType:  req.CycleType,
		Status:     models.PaymentPaid,
	}
	if err := database.CreatePayment(config.GetDB(), payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Payment recorded successfully",
		"payment": payment,
	})
}

// GetPaymentsByStudentAPI lists a student's payments, newest cycle first.
func GetPaymentsByStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if studentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student ID is required"})
	}

	payments, err := database.GetPaymentsByStudent(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"count":    len(payments),
	})
}
