package attendance

import (
	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")

	api.Post("/", MarkAttendanceAPI)
	api.Get("/class/:classId/:date", GetAttendanceByClassAndDateAPI)
	api.Get("/student/:studentId/summary", GetStudentAttendanceSummaryAPI)
}
