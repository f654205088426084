package middleware

import (
	"makkanya_dashboard/database"
	"makkanya_dashboard/helper"
	"makkanya_dashboard/model"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/secure", Protected(), func(c *fiber.Ctx) error {
		claim, _ := c.Locals("user").(model.TokenClaim)
		return c.SendString(claim.Subject)
	})
	return app
}

func TestProtectedWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	resp, err := protectedApp().Test(httptest.NewRequest("GET", "/secure", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestProtectedWithSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	app := protectedApp()
	token, err := helper.GenerateAccessToken(model.TokenClaim{Subject: "ops"}, "s3cret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", fiber.StatusUnauthorized},
		{"bad", "Bearer not-a-token", fiber.StatusUnauthorized},
		{"valid", "Bearer " + token, fiber.StatusOK},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/secure", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, resp.StatusCode, tt.want)
		}
	}
}

func TestRequireDataset(t *testing.T) {
	database.Reset()
	t.Cleanup(database.Reset)
	app := fiber.New()
	app.Get("/data", RequireDataset(), func(c *fiber.Ctx) error {
		ds, _ := c.Locals("dataset").(*model.Dataset)
		version, _ := c.Locals("datasetVersion").(string)
		if version != database.Version() {
			return c.SendStatus(fiber.StatusConflict)
		}
		return c.JSON(len(ds.Locations))
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/data", nil))
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("status before load = %d, want 503", resp.StatusCode)
	}

	database.Replace(database.LoadSample())
	resp, _ = app.Test(httptest.NewRequest("GET", "/data", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status after load = %d, want 200", resp.StatusCode)
	}
}
