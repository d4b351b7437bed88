package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAdminToken(42, "boss")
	require.NoError(t, err)

	id, err := ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestAdminTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAdminToken(42, "boss")
	require.NoError(t, err)

	_, err = ValidateAdminToken(token + "x")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ValidateAdminToken(token)
	assert.Error(t, err)
}

func TestAdminTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateAdminToken(1, "boss")
	assert.Error(t, err)

	_, err = ValidateAdminToken("anything")
	assert.Error(t, err)
}
