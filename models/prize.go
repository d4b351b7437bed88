package models

import (
	"errors"
	"os"
	"strings"

	"gorm.io/gorm"
)

// ErrOutOfStock is returned when a stock decrement finds no stock left.
// The caller must roll back the surrounding transaction.
var ErrOutOfStock = errors.New("prize out of stock")

type Prize struct {
	gorm.Model

	Name        string  `gorm:"size:255;not null" json:"name"`
	Price       int     `json:"price"`
	Image       string  `gorm:"size:255" json:"image"`
	Color       string  `gorm:"size:20" json:"color"`
	Probability float64 `gorm:"type:decimal(5,4);not null" json:"-"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`
	Stock       *int    `json:"stock"`
	SortOrder   int     `gorm:"default:0;index" json:"sort_order"`

	SpinResults []SpinResult `gorm:"foreignKey:PrizeID" json:"-"`
}

// AvailablePrizes returns active, in-stock prizes in wheel order. This
// ordered list is the universe for both weighted selection and angle
// geometry, so every caller must use it as-is.
func AvailablePrizes(db *gorm.DB) ([]Prize, error) {
	var prizes []Prize
	err := db.
		Where("is_active = ?", true).
		Where("stock IS NULL OR stock > 0").
		Order("sort_order asc").
		Find(&prizes).Error
	return prizes, err
}

// DecrementStock decreases stock by one for finite-stock prizes. The
// WHERE guard re-checks stock under the caller's transaction so two
// concurrent winners of the last unit can never drive it negative.
func (p *Prize) DecrementStock(tx *gorm.DB) error {
	if p.Stock == nil {
		return nil
	}
	res := tx.Model(&Prize{}).
		Where("id = ? AND stock > 0", p.ID).
		UpdateColumn("stock", gorm.Expr("stock - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOutOfStock
	}
	return nil
}

func (p *Prize) ImageURL() string {
	if p.Image == "" {
		return ""
	}
	if strings.HasPrefix(p.Image, "http") {
		return p.Image
	}
	base := strings.TrimRight(os.Getenv("APP_URL"), "/")
	return base + "/" + strings.TrimLeft(p.Image, "/")
}

// PublicView is the projection served to visitors. Probability stays
// admin-only.
func (p *Prize) PublicView() map[string]any {
	return map[string]any{
		"id":        p.ID,
		"name":      p.Name,
		"price":     p.Price,
		"image":     p.Image,
		"image_url": p.ImageURL(),
		"color":     p.Color,
	}
}

// AdminView includes the hidden probability field.
func (p *Prize) AdminView() map[string]any {
	view := p.PublicView()
	view["probability"] = p.Probability
	view["is_active"] = p.IsActive
	view["stock"] = p.Stock
	view["sort_order"] = p.SortOrder
	view["created_at"] = p.CreatedAt
	view["updated_at"] = p.UpdatedAt
	return view
}
