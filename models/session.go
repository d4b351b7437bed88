package models

import (
	"time"

	"gorm.io/gorm"
)

type Session struct {
	gorm.Model

	SessionToken string      `gorm:"size:64;uniqueIndex;not null" json:"-"`
	CodeID       *uint       `gorm:"index" json:"code_id"`
	Code         *RedeemCode `gorm:"foreignKey:CodeID" json:"-"`
	SpinBalance  int         `gorm:"not null;default:0" json:"spin_balance"`
	TotalSpins   int         `gorm:"not null;default:0" json:"total_spins"`
	IPAddress    string      `gorm:"size:45" json:"ip_address"`
	UserAgent    string      `gorm:"size:255" json:"user_agent"`
	ExpiresAt    time.Time   `gorm:"index;not null" json:"expires_at"`
	LastSpinAt   *time.Time  `json:"last_spin_at"`

	SpinResults []SpinResult `gorm:"foreignKey:SessionID" json:"-"`
}

// IsValid reports whether the session is still usable. Expiry is
// absolute, fixed at creation.
func (s *Session) IsValid() bool {
	return s.ExpiresAt.After(time.Now())
}

func (s *Session) HasSpins() bool {
	return s.SpinBalance > 0
}
