package handler

import (
	"makkanya_dashboard/database"
	"makkanya_dashboard/model"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSelectionKeyUsesRequestVersion(t *testing.T) {
	database.Reset()
	t.Cleanup(database.Reset)
	ds, report := database.LoadSample()
	database.Replace(ds, report)

	var key string
	app := fiber.New()
	app.Get("/kpi", func(c *fiber.Ctx) error {
		c.Locals("datasetVersion", "previous-load")
		key = selectionKey(getDatasetVersion(c), "kpi", model.DefaultSelection())
		return c.SendStatus(fiber.StatusOK)
	})
	if _, err := app.Test(httptest.NewRequest("GET", "/kpi", nil)); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(key, "kpi:previous-load:") {
		t.Errorf("key = %q, want the version stored with the request dataset", key)
	}
	if strings.Contains(key, report.Version) {
		t.Error("key should not follow a newer load")
	}
}
