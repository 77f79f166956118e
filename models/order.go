package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FulfillmentStatus string

const (
	FulfillmentPending   FulfillmentStatus = "pending"
	FulfillmentFulfilled FulfillmentStatus = "fulfilled"
)

// Order is created atomically at checkout and immutable afterwards except
// for the fulfillment fields. Status is derived from the lines: fulfilled
// iff every line is fulfilled.
type Order struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	BuyerID     uint              `gorm:"index;not null" json:"buyer_id"`
	OrderRef    string            `gorm:"uniqueIndex" json:"order_ref"`
	Status      FulfillmentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Lines       []OrderLine       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines"`
	CreatedAt   time.Time         `json:"created_at"`
	FulfilledAt *time.Time        `json:"fulfilled_at,omitempty"`
}

// OrderLine snapshots what was bought from whom at which price. Sellers
// fulfill their lines independently, so each line carries its own status
// and timestamp.
type OrderLine struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	OrderID     uint              `gorm:"uniqueIndex:idx_order_offering" json:"order_id"`
	OfferingID  uint              `gorm:"uniqueIndex:idx_order_offering" json:"offering_id"`
	SellerID    uint              `gorm:"index" json:"seller_id"`
	UnitPrice   decimal.Decimal   `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	Quantity    int               `gorm:"not null" json:"quantity"`
	Status      FulfillmentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	FulfilledAt *time.Time        `json:"fulfilled_at,omitempty"`
}
