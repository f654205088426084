package handler

import (
	"errors"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/helper"
	"makkanya_dashboard/model"
	"makkanya_dashboard/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// zoneScores scores every location and keeps those in the selected zone.
// Index stays the position in the full location list.
func zoneScores(ds *model.Dataset, sel model.Selection) []model.LocationScore {
	categories := helper.ZoneCategories(sel.Zone)
	out := []model.LocationScore{}
	for _, s := range utils.ScoreLocations(ds.Locations) {
		if categories.Contains(s.Category) {
			out = append(out, s)
		}
	}
	return out
}

func GetLocations(c *fiber.Ctx) error {
	query, _ := c.Locals("locationQuery").(model.LocationQuery)
	scores := utils.FilterScores(zoneScores(getDataset(c), getSelection(c)), query.Filter)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"stats": utils.LocationStatistics(scores),
		"locations": model.ResponseCustom{
			Rows:       utils.ApplyPagination(scores, query.Limit, query.Page),
			Limit:      query.Limit,
			Page:       query.Page,
			TotalCount: int64(len(scores)),
		},
	})
}

func GetHubCandidates(c *fiber.Ctx) error {
	hubs := utils.FilterScores(zoneScores(getDataset(c), getSelection(c)), "hub")
	return utils.SuccessResponse(c, fiber.StatusOK, hubs)
}

func GetLocationById(c *fiber.Ctx) error {
	ds := getDataset(c)
	index, _ := c.Locals("inputId").(int)
	if index >= len(ds.Locations) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("location not found"))
	}
	score := utils.ScoreLocation(index, ds.Locations[index])
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"location": ds.Locations[index],
		"score":    score,
		"mapsLink": utils.MapsLink(ds.Locations[index]),
	})
}

// GetLocationQR renders a PNG QR code of the location's maps link.
func GetLocationQR(c *fiber.Ctx) error {
	ds := getDataset(c)
	index, _ := c.Locals("inputId").(int)
	if index >= len(ds.Locations) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("location not found"))
	}
	size, err := strconv.Atoi(c.Query("size", "256"))
	if err != nil || size < 64 || size > 1024 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("size must be between 64 and 1024"))
	}

	png, err := utils.LocationQR(ds.Locations[index], size)
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
