package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionIsValid(t *testing.T) {
	live := Session{ExpiresAt: time.Now().Add(time.Hour)}
	assert.True(t, live.IsValid())

	lapsed := Session{ExpiresAt: time.Now().Add(-time.Minute)}
	assert.False(t, lapsed.IsValid())
}

func TestSessionHasSpins(t *testing.T) {
	assert.True(t, (&Session{SpinBalance: 1}).HasSpins())
	assert.False(t, (&Session{SpinBalance: 0}).HasSpins())
}

func TestSpinResultCanClaim(t *testing.T) {
	assert.True(t, (&SpinResult{Status: SpinStatusPending}).CanClaim())
	assert.False(t, (&SpinResult{Status: SpinStatusClaimed}).CanClaim())
	assert.False(t, (&SpinResult{Status: SpinStatusExpired}).CanClaim())
}
