package spin

import (
	"luckywheel/helpers"
	"luckywheel/middlewares"

	"github.com/gofiber/fiber/v2"
)

// History lists the session's claimed prizes, newest first.
func History(c *fiber.Ctx) error {
	session, ok := middlewares.SessionFromCtx(c)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "invalid session")
	}

	entries, err := service.History(&session)
	if err != nil {
		return helpers.JSONFail(c, err)
	}

	return helpers.JSONSuccess(c, "History retrieved successfully", entries)
}
