package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SpinStatusPending = "pending"
	SpinStatusClaimed = "claimed"
	SpinStatusExpired = "expired"

	DeliveryStatusPending   = "pending"
	DeliveryStatusDelivered = "delivered"
)

type SpinResult struct {
	gorm.Model

	SessionID uint    `gorm:"index;not null" json:"session_id"`
	Session   Session `gorm:"foreignKey:SessionID" json:"-"`
	PrizeID   uint    `gorm:"index;not null" json:"prize_id"`
	Prize     Prize   `gorm:"foreignKey:PrizeID" json:"-"`

	SpinToken   string          `gorm:"size:64;uniqueIndex;not null" json:"-"`
	TargetAngle decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"target_angle"`
	Status      string          `gorm:"size:16;default:pending;index" json:"status"`
	ClaimedAt   *time.Time      `json:"claimed_at"`

	// Fulfillment tracking, mutated by admin tooling independently of
	// the claim status.
	DeliveryStatus string     `gorm:"size:16;default:pending;index" json:"delivery_status"`
	DeliveryNote   string     `gorm:"size:500" json:"delivery_note"`
	DeliveredAt    *time.Time `json:"delivered_at"`
}

// CanClaim reports whether the result is still claimable. pending is the
// only non-terminal status.
func (r *SpinResult) CanClaim() bool {
	return r.Status == SpinStatusPending
}

// ErrNotClaimable is returned when a claim races another claim or hits
// a terminal status.
var ErrNotClaimable = errors.New("spin result is not claimable")

// MarkClaimed transitions pending -> claimed. The status guard in the
// WHERE clause makes a second concurrent claim lose cleanly.
func (r *SpinResult) MarkClaimed(tx *gorm.DB) error {
	now := time.Now()
	res := tx.Model(&SpinResult{}).
		Where("id = ? AND status = ?", r.ID, SpinStatusPending).
		Updates(map[string]any{
			"status":     SpinStatusClaimed,
			"claimed_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotClaimable
	}
	r.Status = SpinStatusClaimed
	r.ClaimedAt = &now
	return nil
}

func (r *SpinResult) MarkDelivered(tx *gorm.DB, note string) error {
	now := time.Now()
	return tx.Model(r).Updates(map[string]any{
		"delivery_status": DeliveryStatusDelivered,
		"delivery_note":   note,
		"delivered_at":    now,
	}).Error
}

func (r *SpinResult) MarkUndelivered(tx *gorm.DB, note string) error {
	return tx.Model(r).Updates(map[string]any{
		"delivery_status": DeliveryStatusPending,
		"delivery_note":   note,
		"delivered_at":    nil,
	}).Error
}
