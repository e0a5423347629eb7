package payments

import (
	"github.com/gofiber/fiber/v2"
)

func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")

	api.Post("/", CreatePaymentAPI)
	api.Get("/student/:studentId", GetPaymentsByStudentAPI)
}
