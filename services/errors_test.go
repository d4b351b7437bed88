package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinErrorStatuses(t *testing.T) {
	assert.Equal(t, 404, NewNotFound("x").StatusCode())
	assert.Equal(t, 400, NewInvalid("x").StatusCode())
	assert.Equal(t, 401, NewUnauthorized("x").StatusCode())
	assert.Equal(t, 500, NewServerError("x").StatusCode())

	err := NewInvalid("out of spins")
	assert.EqualError(t, err, "out of spins")
}
