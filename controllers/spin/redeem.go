package spin

import (
	"strings"

	"luckywheel/helpers"

	"github.com/gofiber/fiber/v2"
)

type RedeemRequest struct {
	Code string `json:"code"`
}

func RedeemCode(c *fiber.Ctx) error {
	var req RedeemRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if strings.TrimSpace(req.Code) == "" {
		return helpers.JSONError(c, "CODE_REQUIRED")
	}

	out, err := service.RedeemCode(req.Code, c.IP(), c.Get("User-Agent"))
	if err != nil {
		return helpers.JSONFail(c, err)
	}

	return helpers.JSONSuccess(c, "Code redeemed successfully", out)
}
