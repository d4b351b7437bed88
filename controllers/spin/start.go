package spin

import (
	"luckywheel/helpers"
	"luckywheel/middlewares"

	"github.com/gofiber/fiber/v2"
)

type StartSpinRequest struct {
	CurrentRotation float64 `json:"current_rotation"`
}

// StartSpin runs one spin against the caller's session. The response
// carries only the claim token and the rotation amount; the prize stays
// hidden until the claim.
func StartSpin(c *fiber.Ctx) error {
	session, ok := middlewares.SessionFromCtx(c)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "invalid session")
	}

	// An absent or unparseable rotation falls back to 0.
	var req StartSpinRequest
	_ = c.BodyParser(&req)

	out, err := service.StartSpin(&session, req.CurrentRotation)
	if err != nil {
		return helpers.JSONFail(c, err)
	}

	return helpers.JSONSuccess(c, "Spin started", out)
}
