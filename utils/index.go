package utils

import (
	"math"

	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// ApplyPagination returns the requested page of rows, page 1 by default.
// Without a limit the whole slice is returned. Pages past the end are empty.
func ApplyPagination[T any](rows []T, limit, page *int) []T {
	if limit == nil || *limit <= 0 {
		return rows
	}
	p := 1
	if page != nil && *page > 1 {
		p = *page
	}
	if len(rows) == 0 || p-1 > (len(rows)-1)/(*limit) {
		return []T{}
	}
	offset := *limit * (p - 1)
	end := offset + *limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func CalculateGrowth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return ((current - previous) / previous) * 100
}

// SafeDiv divides a by b, returning fallback when b is zero.
func SafeDiv(a, b, fallback float64) float64 {
	if b == 0 {
		return fallback
	}
	return a / b
}

func roundFloat(val float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(val*p) / p
}

func Ptr[T any](v T) *T {
	return &v
}
