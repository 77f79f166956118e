// Package store defines the persistence boundary of the marketplace core.
// The services only ever touch these interfaces; gormstore backs them with
// postgres in production and memstore backs them in tests and local dev.
package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zaxiang/Mini-Amazon/models"
)

// OfferingStore holds per-offering available quantity and price.
type OfferingStore interface {
	GetOffering(ctx context.Context, id uint) (*models.Offering, error)
	// GetOfferingForUpdate reads the offering with its row locked until the
	// enclosing Transact commits or rolls back. Callers must be inside a
	// Transact; this is what keeps concurrent checkouts from overselling.
	GetOfferingForUpdate(ctx context.Context, id uint) (*models.Offering, error)
	CreateOffering(ctx context.Context, o *models.Offering) error
	UpdateOffering(ctx context.Context, o *models.Offering) error
	UpdateOfferingQuantity(ctx context.Context, id uint, quantity int) error
	DeleteOffering(ctx context.Context, id uint) error
	ListOfferingsBySeller(ctx context.Context, sellerID uint) ([]models.Offering, error)
	// OfferingReferenced reports whether any cart line or order line points
	// at the offering. Referenced offerings have their price locked.
	OfferingReferenced(ctx context.Context, id uint) (bool, error)
}

// LedgerStore holds per-user balances.
type LedgerStore interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	// GetUserForUpdate locks the user row like GetOfferingForUpdate does for
	// offerings, serializing concurrent balance mutations.
	GetUserForUpdate(ctx context.Context, id uint) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUserBalance(ctx context.Context, id uint, balance decimal.Decimal) error
}

// CartStore holds per-buyer carts and their lines.
type CartStore interface {
	GetOrCreateCart(ctx context.Context, userID uint) (*models.Cart, error)
	GetCartLine(ctx context.Context, cartID, offeringID uint) (*models.CartLine, error)
	// ListCartLines returns lines with the given InCart state, highest unit
	// price first.
	ListCartLines(ctx context.Context, cartID uint, inCart bool) ([]models.CartLine, error)
	CreateCartLine(ctx context.Context, line *models.CartLine) error
	UpdateCartLineQuantity(ctx context.Context, cartID, offeringID uint, quantity int) error
	SetCartLineInCart(ctx context.Context, cartID, offeringID uint, inCart bool) error
	DeleteCartLine(ctx context.Context, cartID, offeringID uint) error
	DeleteActiveCartLines(ctx context.Context, cartID uint) error
}

// OrderStore holds orders and their lines.
type OrderStore interface {
	CreateOrder(ctx context.Context, o *models.Order) error
	// GetOrder returns the order with its lines loaded.
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID uint) ([]models.Order, error)
	ListOrdersBySeller(ctx context.Context, sellerID uint) ([]models.Order, error)
	CreateOrderLine(ctx context.Context, line *models.OrderLine) error
	GetOrderLine(ctx context.Context, orderID, offeringID uint) (*models.OrderLine, error)
	// MarkOrderLineFulfilled flips a pending line to fulfilled and stamps it.
	// Returns false without error when the line was already fulfilled.
	MarkOrderLineFulfilled(ctx context.Context, orderID, offeringID uint, at time.Time) (bool, error)
	CountUnfulfilledLines(ctx context.Context, orderID uint) (int64, error)
	MarkOrderFulfilled(ctx context.Context, orderID uint, at time.Time) error
}

// ReviewStore holds offering reviews and seller feedback with upvotes.
type ReviewStore interface {
	CreateReview(ctx context.Context, r *models.Review) error
	GetReview(ctx context.Context, id uint) (*models.Review, error)
	GetReviewByUserAndOffering(ctx context.Context, userID, offeringID uint) (*models.Review, error)
	UpdateReview(ctx context.Context, id uint, rating int, body string) error
	DeleteReview(ctx context.Context, id uint) error
	ListReviewsByOffering(ctx context.Context, offeringID uint) ([]models.Review, error)
	// AddReviewUpvote records an upvote and bumps the counter. Returns false
	// when the user already upvoted this review.
	AddReviewUpvote(ctx context.Context, reviewID, userID uint) (bool, error)

	CreateFeedback(ctx context.Context, f *models.Feedback) error
	GetFeedback(ctx context.Context, id uint) (*models.Feedback, error)
	GetFeedbackByUserAndSeller(ctx context.Context, userID, sellerID uint) (*models.Feedback, error)
	UpdateFeedback(ctx context.Context, id uint, rating int, body string) error
	DeleteFeedback(ctx context.Context, id uint) error
	ListFeedbackBySeller(ctx context.Context, sellerID uint) ([]models.Feedback, error)
	AddFeedbackUpvote(ctx context.Context, feedbackID, userID uint) (bool, error)
}

// Store is the full persistence boundary.
type Store interface {
	OfferingStore
	LedgerStore
	CartStore
	OrderStore
	ReviewStore

	// Transact runs fn atomically: every call made through the Store handed
	// to fn commits together, or rolls back together if fn returns an error.
	// Nested calls join the enclosing transaction.
	Transact(ctx context.Context, fn func(Store) error) error
}
