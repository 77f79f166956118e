// Package service holds the transactional core of the marketplace: cart
// management, the checkout coordinator, the fulfillment state machine,
// inventory, ledger and reviews. Services are storage-agnostic; they talk
// to the store.Store boundary only and never reach into request context
// for identity — callers pass user ids explicitly.
package service

import (
	"go.uber.org/zap"

	"github.com/zaxiang/Mini-Amazon/store"
)

// Registry bundles the services for handler wiring.
type Registry struct {
	Cart        *CartService
	Checkout    *CheckoutService
	Fulfillment *FulfillmentService
	Inventory   *InventoryService
	Ledger      *LedgerService
	Review      *ReviewService
}

func NewRegistry(st store.Store, log *zap.Logger) *Registry {
	return &Registry{
		Cart:        NewCartService(st, log),
		Checkout:    NewCheckoutService(st, log),
		Fulfillment: NewFulfillmentService(st, log),
		Inventory:   NewInventoryService(st, log),
		Ledger:      NewLedgerService(st, log),
		Review:      NewReviewService(st, log),
	}
}
