package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDomainError struct {
	msg    string
	status int
}

func (e *fakeDomainError) Error() string   { return e.msg }
func (e *fakeDomainError) StatusCode() int { return e.status }

func doRequest(t *testing.T, handler fiber.Handler) (int, map[string]any) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestJSONSuccessEnvelope(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JSONSuccess(c, "done", fiber.Map{"x": 1})
	})

	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "done", body["message"])
	assert.NotNil(t, body["data"])
}

func TestJSONErrorCodeEnvelope(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JSONErrorCode(c, fiber.StatusUnauthorized, "SESSION_EXPIRED", "session expired")
	})

	assert.Equal(t, 401, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "SESSION_EXPIRED", body["code"])
	assert.Equal(t, "session expired", body["message"])
}

func TestJSONFailHonorsDomainStatus(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JSONFail(c, &fakeDomainError{msg: "result not found", status: 404})
	})

	assert.Equal(t, 404, status)
	assert.Equal(t, "result not found", body["message"])
}

func TestJSONFailDefaultsTo500(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JSONFail(c, errors.New("driver: bad connection"))
	})

	assert.Equal(t, 500, status)
	// Raw internal errors are never leaked to clients.
	assert.Equal(t, "internal server error", body["message"])
}
