package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is both a buyer and a potential seller. Balance is the user's
// spendable ledger amount and never goes below zero.
type User struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Email     string          `gorm:"uniqueIndex;not null" json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Address   string          `json:"address"`
	Balance   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}
