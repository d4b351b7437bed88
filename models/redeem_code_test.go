package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SPIN2026", NormalizeCode("  spin2026 "))
	assert.Equal(t, "ABC-123", NormalizeCode("abc-123"))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestRedeemCodeIsValid(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name   string
		code   RedeemCode
		valid  bool
		reason string
	}{
		{
			name:  "active without limits",
			code:  RedeemCode{IsActive: true},
			valid: true,
		},
		{
			name:   "disabled",
			code:   RedeemCode{IsActive: false},
			valid:  false,
			reason: "code has been disabled",
		},
		{
			name:   "expired",
			code:   RedeemCode{IsActive: true, ExpiresAt: timePtr(past)},
			valid:  false,
			reason: "code has expired",
		},
		{
			name:  "expiry in future",
			code:  RedeemCode{IsActive: true, ExpiresAt: timePtr(future)},
			valid: true,
		},
		{
			name:   "exhausted",
			code:   RedeemCode{IsActive: true, MaxUses: intPtr(3), UsedCount: 3},
			valid:  false,
			reason: "code has been fully used",
		},
		{
			name:  "one use left",
			code:  RedeemCode{IsActive: true, MaxUses: intPtr(3), UsedCount: 2},
			valid: true,
		},
		{
			name:   "disabled wins over expiry",
			code:   RedeemCode{IsActive: false, ExpiresAt: timePtr(past)},
			valid:  false,
			reason: "code has been disabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.code.IsValid())
			assert.Equal(t, tt.reason, tt.code.InvalidReason())
		})
	}
}
