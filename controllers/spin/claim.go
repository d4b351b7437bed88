package spin

import (
	"luckywheel/helpers"
	"luckywheel/middlewares"

	"github.com/gofiber/fiber/v2"
)

// ClaimResult reveals the prize for a finished spin animation.
func ClaimResult(c *fiber.Ctx) error {
	session, ok := middlewares.SessionFromCtx(c)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "invalid session")
	}

	spinToken := c.Params("spin_token")
	if spinToken == "" {
		return helpers.JSONError(c, "SPIN_TOKEN_REQUIRED")
	}

	out, err := service.ClaimResult(spinToken, &session)
	if err != nil {
		return helpers.JSONFail(c, err)
	}

	return helpers.JSONSuccess(c, "Prize claimed", out)
}
