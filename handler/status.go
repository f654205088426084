package handler

import (
	"context"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/database"
	"makkanya_dashboard/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RefreshDataset reloads the configured source. On failure the dataset in
// memory keeps serving.
func RefreshDataset(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	report, err := database.Reload(ctx, settings.DataSource)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_LOAD_DATASET, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, report)
}

func GetStatus(c *fiber.Ctx) error {
	mu.Lock()
	connected := len(clients)
	mu.Unlock()

	_, err := database.Current()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"loaded":    err == nil,
		"report":    database.Report(),
		"lastEvent": database.LastStatus(),
		"listeners": connected,
		"cache":     database.Redis != nil,
	})
}
