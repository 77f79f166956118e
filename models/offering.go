package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offering is one seller's listing of a product: a live available quantity
// and a unit price. Quantity never goes negative. Once open cart lines or
// order lines reference an offering its price is locked; buyers always pay
// the price snapshotted onto their cart line at add time.
type Offering struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	SellerID  uint            `gorm:"index;not null" json:"seller_id"`
	ProductID uint            `gorm:"index;not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
