package settings

import (
	"github.com/gofiber/fiber/v2"

	appsettings "tuition-center/app/settings"
)

// SetupSettingsRoutes registers the settings API against the given store.
// The store is built once in main from the SQL repository so the whole
// process shares one cache.
func SetupSettingsRoutes(app *fiber.App, s *appsettings.Store) {
	store = s

	api := app.Group("/api/settings")

	api.Get("/fee-method", GetFeeMethod)
	api.Put("/fee-method", SetFeeMethod)

	api.Get("/", GetAllSettings)
	api.Post("/", UpsertSetting)
	api.Get("/:key", GetSetting)
	api.Put("/:key", UpdateSetting)
	api.Delete("/:key", DeleteSetting)
}
