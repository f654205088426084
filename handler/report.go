package handler

import (
	"makkanya_dashboard/helper"
	"makkanya_dashboard/utils"

	"github.com/gofiber/fiber/v2"
)

func GetHeatmap(c *fiber.Ctx) error {
	ds := getDataset(c)
	sel := getSelection(c)
	view := helper.Filter(ds, sel)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"zones":   utils.HeatmapByZone(view.Heatmap),
		"summary": utils.Heatmap(ds, sel),
	})
}

func GetZonePerformance(c *fiber.Ctx) error {
	ds := getDataset(c)
	sel := getSelection(c)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"performance": utils.ZonePerformanceReport(ds.DriverZones, sel.Zone),
		"overview":    utils.ZoneOverview(ds.ZoneRadius),
		"zones":       ds.ZoneRadius,
		"distances":   ds.ZoneDistances,
	})
}

func GetMonthly(c *fiber.Ctx) error {
	ds := getDataset(c)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"months": ds.MonthlyKPI,
		"totals": utils.MonthlyReport(ds.MonthlyKPI),
	})
}
