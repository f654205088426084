package handler

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/model"
	"makkanya_dashboard/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

var now = time.Now

func renderWorkbook(ds *model.Dataset, at time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := utils.WriteWorkbook(ds, &buf, at); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportWorkbook downloads the full dataset as an xlsx workbook. The
// selection is ignored on purpose: exports are always complete.
func ExportWorkbook(c *fiber.Ctx) error {
	at := now()
	data, err := renderWorkbook(getDataset(c), at)
	if err != nil {
		log.Printf("[EXPORT] build workbook: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EXPORT, err)
	}

	c.Set(fiber.HeaderContentType, constants.EXPORT_CONTENT_TYPE)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, utils.ExportFileName(at)))
	return c.Send(data)
}

func EmailWorkbook(c *fiber.Ctx) error {
	input, _ := c.Locals("exportMail").(model.ExportMailInput)
	if !settings.MailEnabled() {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.MAIL_NOT_CONFIGURED, utils.ErrMailDisabled)
	}

	at := now()
	data, err := renderWorkbook(getDataset(c), at)
	if err != nil {
		log.Printf("[EXPORT] build workbook: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EXPORT, err)
	}

	mail := utils.ExportMailData{
		FileName: utils.ExportFileName(at),
		Date:     utils.ExportDateStamp(at),
		Note:     input.Note,
		Sheets:   utils.SheetNames(),
	}
	if err := utils.SendExportEmail(settings, input.To, input.Subject, mail, data); err != nil {
		if errors.Is(err, utils.ErrMailDisabled) {
			return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.MAIL_NOT_CONFIGURED, err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_SEND_MAIL, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"fileName":   mail.FileName,
		"recipients": input.To,
	})
}
