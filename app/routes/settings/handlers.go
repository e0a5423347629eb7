package settings

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"tuition-center/app/models"
	appsettings "tuition-center/app/settings"
	"tuition-center/app/validation"
)

// store is set once at route setup; handlers share the single process-wide
// settings store so every read goes through its cache.
var store *appsettings.Store

// GetAllSettings returns every stored setting.
func GetAllSettings(c *fiber.Ctx) error {
	list, err := store.All()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load settings: " + err.Error()})
	}
	return c.JSON(fiber.Map{
		"settings": list,
		"count":    len(list),
	})
}

// GetSetting returns the value under one key; a missing key is 404.
func GetSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	value, ok, err := store.Get(key)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load setting: " + err.Error()})
	}
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Setting not found"})
	}
	return c.JSON(fiber.Map{"key": key, "value": value})
}

// UpsertSetting creates or updates a setting.
func UpsertSetting(c *fiber.Ctx) error {
	type SettingRequest struct {
		Key         string `json:"key" validate:"required,min=1,max=100"`
		Value       string `json:"value" validate:"required"`
		Description string `json:"description"`
	}

	var req SettingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	setting, err := store.Upsert(req.Key, req.Value, req.Description)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save setting: " + err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(setting)
}

// UpdateSetting updates the value under the key in the path.
func UpdateSetting(c *fiber.Ctx) error {
	type UpdateRequest struct {
		Value       string `json:"value" validate:"required"`
		Description string `json:"description"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	setting, err := store.Upsert(c.Params("key"), req.Value, req.Description)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update setting: " + err.Error()})
	}
	return c.JSON(setting)
}

// DeleteSetting removes a setting; a missing key is 404, not masked.
func DeleteSetting(c *fiber.Ctx) error {
	if err := store.Delete(c.Params("key")); err != nil {
		if errors.Is(err, appsettings.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Setting not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete setting: " + err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetFeeMethod returns the active fee-calculation method, falling back to
// PER_SESSION when nothing is stored.
func GetFeeMethod(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"fee_calculation_method": store.FeeCalculationMethod(),
	})
}

// SetFeeMethod switches the fee-calculation policy.
func SetFeeMethod(c *fiber.Ctx) error {
	type FeeMethodRequest struct {
		Method string `json:"method" validate:"required"`
	}

	var req FeeMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	method := models.FeeCalculationMethod(strings.ToUpper(req.Method))
	if method != models.PerSession && method != models.PerCycle {
		return c.Status(400).JSON(fiber.Map{"error": "method must be PER_SESSION or PER_CYCLE"})
	}

	if err := store.SetFeeCalculationMethod(method); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save fee method: " + err.Error()})
	}
	return c.JSON(fiber.Map{"fee_calculation_method": method})
}
