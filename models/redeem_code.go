package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RedeemCode struct {
	gorm.Model

	Code        string         `gorm:"size:50;uniqueIndex;not null" json:"code"`
	SpinsAmount int            `gorm:"not null" json:"spins_amount"`
	MaxUses     *int           `json:"max_uses"`
	UsedCount   int            `gorm:"default:0" json:"used_count"`
	Note        string         `gorm:"size:255" json:"note"`
	ExpiresAt   *time.Time     `json:"expires_at"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	BatchInfo   datatypes.JSON `gorm:"type:jsonb" json:"batch_info,omitempty"`

	Sessions []Session `gorm:"foreignKey:CodeID" json:"-"`
}

// NormalizeCode maps raw user input to the stored form. Codes are
// case-insensitive and stored upper-cased.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// IsValid reports whether the code can still be redeemed.
func (rc *RedeemCode) IsValid() bool {
	if !rc.IsActive {
		return false
	}
	if rc.ExpiresAt != nil && rc.ExpiresAt.Before(time.Now()) {
		return false
	}
	if rc.MaxUses != nil && rc.UsedCount >= *rc.MaxUses {
		return false
	}
	return true
}

// InvalidReason returns why the code cannot be redeemed, empty when it can.
func (rc *RedeemCode) InvalidReason() string {
	if !rc.IsActive {
		return "code has been disabled"
	}
	if rc.ExpiresAt != nil && rc.ExpiresAt.Before(time.Now()) {
		return "code has expired"
	}
	if rc.MaxUses != nil && rc.UsedCount >= *rc.MaxUses {
		return "code has been fully used"
	}
	return ""
}
