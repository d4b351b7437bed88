package middlewares

import (
	"luckywheel/database"
	"luckywheel/helpers"
	"luckywheel/models"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionLocal = "spin_session"

	codeSessionRequired = "SESSION_REQUIRED"
	codeInvalidSession  = "INVALID_SESSION"
	codeSessionExpired  = "SESSION_EXPIRED"
)

// SpinSessionAuth resolves the session token from the X-Session-Token
// header or the spin_session_token cookie and attaches the session to
// the request. Failures carry a machine-readable reason code.
func SpinSessionAuth(c *fiber.Ctx) error {
	token := c.Get("X-Session-Token")
	if token == "" {
		token = c.Cookies("spin_session_token")
	}

	if token == "" {
		return helpers.JSONErrorCode(c, fiber.StatusUnauthorized,
			codeSessionRequired, "enter a code to start playing")
	}

	var session models.Session
	if err := database.DB.Where("session_token = ?", token).First(&session).Error; err != nil {
		return helpers.JSONErrorCode(c, fiber.StatusUnauthorized,
			codeInvalidSession, "invalid session")
	}

	if !session.IsValid() {
		return helpers.JSONErrorCode(c, fiber.StatusUnauthorized,
			codeSessionExpired, "session expired, please redeem a new code")
	}

	c.Locals(SessionLocal, session)
	return c.Next()
}

// SessionFromCtx returns the session attached by SpinSessionAuth.
func SessionFromCtx(c *fiber.Ctx) (models.Session, bool) {
	session, ok := c.Locals(SessionLocal).(models.Session)
	return session, ok
}
