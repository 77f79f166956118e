package models

import "errors"

// Business-rule errors returned by the core services. Handlers map these to
// HTTP statuses; anything else is treated as a persistence failure.
var (
	ErrNotFound              = errors.New("record not found")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrInsufficientFunds     = errors.New("not enough balance")
	ErrInsufficientInventory = errors.New("not enough inventory")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrPriceLocked           = errors.New("price is locked while open carts or orders reference this offering")
	ErrAlreadyReviewed       = errors.New("review already exists")

	// ErrNegativeQuantity indicates an inventory invariant violation. It is
	// never expected given the checks upstream and is logged as a defect.
	ErrNegativeQuantity = errors.New("inventory quantity would go negative")
)
