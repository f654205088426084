package validate

import (
	"fmt"
	"makkanya_dashboard/config"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/helper"
	"makkanya_dashboard/model"
	"makkanya_dashboard/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

var shiftNames = map[string]string{
	"all":   constants.SHIFT_ALL,
	"pagi":  constants.SHIFT_PAGI,
	"siang": constants.SHIFT_SIANG,
	"sore":  constants.SHIFT_SORE,
}

// ParseSelection turns query input into a Selection. Zones may be given as
// a label or a slug; unknown zones are kept and simply match nothing.
func ParseSelection(input model.SelectionInput) (model.Selection, error) {
	input.Shift = strings.TrimSpace(input.Shift)
	if s, ok := shiftNames[strings.ToLower(input.Shift)]; ok {
		input.Shift = s
	}
	if err := validate.Struct(input); err != nil {
		return model.Selection{}, err
	}

	sel := model.DefaultSelection()
	if err := copier.CopyWithOption(&sel, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return model.Selection{}, err
	}
	sel.Zone = helper.ZoneFromSlug(input.Zone)
	if sel.Period != constants.PERIOD_7_DAYS {
		sel.Period = constants.PERIOD_30_DAYS
	}
	return sel, nil
}

func Selection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SelectionInput
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		sel, err := ParseSelection(input)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("selection", sel)

		return c.Next()
	}
}

func LocationQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LocationQuery
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("locationQuery", input)

		return c.Next()
	}
}

func SummaryTab() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tab := strings.ToLower(c.Params("tab"))
		if !utils.IsValidValueOfConstant(tab, utils.SummaryTabs) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UNKNOWN_SUMMARY_TAB, fmt.Errorf("tab %q", c.Params("tab")))
		}

		c.Locals("summaryTab", tab)

		return c.Next()
	}
}

func ExportMail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ExportMailInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if limit := config.Load().ExportRecipientLimit; limit > 0 && len(input.To) > limit {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT,
				fmt.Errorf("at most %d recipients", limit))
		}

		c.Locals("exportMail", input)

		return c.Next()
	}
}
