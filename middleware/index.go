package middleware

import (
	"errors"
	"makkanya_dashboard/config"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/database"
	"makkanya_dashboard/helper"
	"makkanya_dashboard/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Protected requires a bearer token signed with JWT_SECRET. Without a
// configured secret every request passes.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := config.Config("JWT_SECRET")
		if secret == "" {
			return c.Next()
		}

		token := c.Cookies("access_token")
		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		claim, err := helper.ParseToken(token, secret)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals("user", claim)
		return c.Next()
	}
}

// RequireDataset answers 503 until a dataset is loaded and otherwise hands
// the current dataset to the handler.
func RequireDataset() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ds, report, err := database.Snapshot()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.NO_DATA, err)
		}
		c.Locals("dataset", ds)
		c.Locals("datasetVersion", report.Version)
		return c.Next()
	}
}
