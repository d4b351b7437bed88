package admin

import (
	"luckywheel/database"
	"luckywheel/helpers"
	"luckywheel/middlewares"
	"luckywheel/models"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JSONError(c, "USERNAME_AND_PASSWORD_REQUIRED")
	}

	var admin models.AdminUser
	if err := database.DB.
		Where("username = ? AND is_active = true", req.Username).
		First(&admin).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if !admin.CheckPassword(req.Password) {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := helpers.GenerateAdminToken(admin.ID, admin.Username)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return helpers.JSONSuccess(c, "Logged in", fiber.Map{
		"token": token,
		"admin": fiber.Map{
			"id":       admin.ID,
			"username": admin.Username,
		},
	})
}

func Me(c *fiber.Ctx) error {
	admin, ok := middlewares.AdminFromCtx(c)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return helpers.JSONSuccess(c, "OK", fiber.Map{
		"id":       admin.ID,
		"username": admin.Username,
	})
}

// Logout is stateless: admin tokens are short-lived and simply discarded
// client-side.
func Logout(c *fiber.Ctx) error {
	return helpers.JSONSuccess(c, "Logged out", nil)
}
