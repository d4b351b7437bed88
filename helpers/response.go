package helpers

import (
	"math"

	"github.com/gofiber/fiber/v2"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONCreated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, message string) error {
	return JSONErrorStatus(c, fiber.StatusBadRequest, message)
}

func JSONErrorStatus(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// JSONErrorCode carries a machine-readable reason code next to the human
// message, used by the session middleware.
func JSONErrorCode(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"code":    code,
		"data":    nil,
	})
}

type statusError interface {
	error
	StatusCode() int
}

// JSONFail renders a domain error, honoring its HTTP status when it
// carries one and falling back to 500 otherwise.
func JSONFail(c *fiber.Ctx, err error) error {
	if se, ok := err.(statusError); ok {
		return JSONErrorStatus(c, se.StatusCode(), se.Error())
	}
	return JSONErrorStatus(c, fiber.StatusInternalServerError, "internal server error")
}

func FormatFloat(num float64, precision int) float64 {
	pow := math.Pow(10, float64(precision))
	return math.Round(num*pow) / pow
}
