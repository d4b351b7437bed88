package spin

import (
	"luckywheel/helpers"
	"luckywheel/middlewares"

	"github.com/gofiber/fiber/v2"
)

// GetSession reports the caller's balance and expiry. The token itself
// is never echoed back.
func GetSession(c *fiber.Ctx) error {
	session, ok := middlewares.SessionFromCtx(c)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "invalid session")
	}

	return helpers.JSONSuccess(c, "Session retrieved successfully", fiber.Map{
		"spin_balance": session.SpinBalance,
		"total_spins":  session.TotalSpins,
		"expires_at":   session.ExpiresAt,
	})
}
