package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Lines     []CartLine `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartLine ties a cart to an offering. InCart=false means saved for later;
// saved lines are skipped by checkout. UnitPrice is snapshotted when the
// line is created and is what the buyer pays, regardless of later price
// drift on the offering.
type CartLine struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CartID     uint            `gorm:"uniqueIndex:idx_cart_offering" json:"cart_id"`
	OfferingID uint            `gorm:"uniqueIndex:idx_cart_offering" json:"offering_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	InCart     bool            `gorm:"not null;default:true" json:"in_cart"`
	AddedAt    time.Time       `json:"added_at"`
}
