package middlewares

import (
	"strings"

	"luckywheel/database"
	"luckywheel/helpers"
	"luckywheel/models"

	"github.com/gofiber/fiber/v2"
)

const AdminLocal = "admin_user"

// AdminAuth validates the Bearer token and loads the admin account into
// the request.
func AdminAuth(c *fiber.Ctx) error {
	authz := c.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "unauthorized")
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	adminID, err := helpers.ValidateAdminToken(tokenStr)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "invalid token")
	}

	var admin models.AdminUser
	if err := database.DB.First(&admin, adminID).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "invalid token")
	}
	if !admin.IsActive {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "access denied")
	}

	c.Locals(AdminLocal, admin)
	return c.Next()
}

// AdminFromCtx returns the admin attached by AdminAuth.
func AdminFromCtx(c *fiber.Ctx) (models.AdminUser, bool) {
	admin, ok := c.Locals(AdminLocal).(models.AdminUser)
	return admin, ok
}
