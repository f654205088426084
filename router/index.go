package router

import (
	"makkanya_dashboard/handler"
	"makkanya_dashboard/middleware"
	"makkanya_dashboard/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")
	data := middleware.RequireDataset()

	v1.Get("/zones", handler.GetZones)
	v1.Get("/status", handler.GetStatus)
	v1.Post("/refresh", middleware.Protected(), handler.RefreshDataset)

	v1.Get("/dataset", data, validate.Selection(), handler.GetDataset)
	v1.Get("/kpi", data, validate.Selection(), handler.GetKPI)
	v1.Get("/summary/:tab", data, validate.Selection(), validate.SummaryTab(), handler.GetSummary)
	v1.Get("/daily", data, validate.Selection(), handler.GetDaily)
	v1.Get("/shifts", data, validate.Selection(), handler.GetShifts)
	v1.Get("/heatmap", data, validate.Selection(), handler.GetHeatmap)
	v1.Get("/zones/performance", data, validate.Selection(), handler.GetZonePerformance)
	v1.Get("/monthly", data, handler.GetMonthly)

	locations := v1.Group("/locations")
	locations.Get("/", data, validate.Selection(), validate.LocationQuery(), handler.GetLocations)
	locations.Get("/hub", data, validate.Selection(), handler.GetHubCandidates)
	locations.Get("/:index", data, validate.GetById("index"), handler.GetLocationById)
	locations.Get("/:index/qr", data, validate.GetById("index"), handler.GetLocationQR)

	export := v1.Group("/export")
	export.Get("/", data, handler.ExportWorkbook)
	export.Post("/email", middleware.Protected(), data, validate.ExportMail(), handler.EmailWorkbook)

	v1.Get("/ws/status", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}, websocket.New(handler.StatusWebsocket))
}
