package handler

import (
	"errors"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/helper"
	"makkanya_dashboard/utils"

	"github.com/gofiber/fiber/v2"
)

func GetZones(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, helper.Zones())
}

// GetDataset returns the dataset as seen through the selection.
func GetDataset(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, helper.Filter(getDataset(c), getSelection(c)))
}

func GetKPI(c *fiber.Ctx) error {
	ds := getDataset(c)
	sel := getSelection(c)
	return cachedResponse(c, selectionKey(getDatasetVersion(c), "kpi", sel), func() (any, error) {
		return utils.ComputeKPIs(ds, sel), nil
	})
}

func GetSummary(c *fiber.Ctx) error {
	ds := getDataset(c)
	sel := getSelection(c)
	tab, _ := c.Locals("summaryTab").(string)

	err := cachedResponse(c, selectionKey(getDatasetVersion(c), "summary", sel, tab), func() (any, error) {
		return utils.Summary(ds, sel, tab)
	})
	if errors.Is(err, utils.ErrUnknownTab) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UNKNOWN_SUMMARY_TAB, err)
	}
	if err != nil {
		return internalError(c, err)
	}
	return nil
}

// GetDaily returns the period filtered daily series with its weekday profile.
func GetDaily(c *fiber.Ctx) error {
	view := helper.Filter(getDataset(c), getSelection(c))
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"days":     view.DailyProjection,
		"weekdays": utils.WeekdayProfiles(view.DailyProjection),
	})
}

func GetShifts(c *fiber.Ctx) error {
	view := helper.Filter(getDataset(c), getSelection(c))
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"operations": view.ShiftOperations,
		"byDay":      utils.ShiftDayProfiles(view.ShiftOperations),
	})
}
