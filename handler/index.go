package handler

import (
	"encoding/json"
	"makkanya_dashboard/config"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/database"
	"makkanya_dashboard/model"
	"makkanya_dashboard/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

var settings = config.Settings{CacheTTLSeconds: 300}

// Setup hands the runtime settings to the handlers.
func Setup(s config.Settings) {
	settings = s
}

func getSelection(c *fiber.Ctx) model.Selection {
	if sel, ok := c.Locals("selection").(model.Selection); ok {
		return sel
	}
	return model.DefaultSelection()
}

func getDataset(c *fiber.Ctx) *model.Dataset {
	ds, _ := c.Locals("dataset").(*model.Dataset)
	return ds
}

func cacheTTL() time.Duration {
	return time.Duration(settings.CacheTTLSeconds) * time.Second
}

func getDatasetVersion(c *fiber.Ctx) string {
	version, _ := c.Locals("datasetVersion").(string)
	return version
}

func selectionKey(version, kind string, sel model.Selection, extra ...string) string {
	parts := append([]string{kind, sel.Zone, sel.Period, sel.Shift}, extra...)
	return database.CacheKey(version, parts...)
}

// cachedResponse answers from redis when the key is present, otherwise
// builds the value, stores it and answers with it.
func cachedResponse(c *fiber.Ctx, key string, build func() (any, error)) error {
	if raw, ok := database.CacheGet(c.Context(), key); ok {
		c.Set("X-Cache", "HIT")
		return utils.SuccessResponse(c, fiber.StatusOK, json.RawMessage(raw))
	}

	data, err := build()
	if err != nil {
		return err
	}
	if raw, err := json.Marshal(data); err == nil {
		database.CacheSet(c.Context(), key, raw, cacheTTL())
	}
	c.Set("X-Cache", "MISS")
	return utils.SuccessResponse(c, fiber.StatusOK, data)
}

func internalError(c *fiber.Ctx, err error) error {
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}
