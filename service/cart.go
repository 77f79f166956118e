package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/store"
)

// CartService manages a buyer's cart lines. Every quantity mutation is
// capped by the offering's live available quantity; checkout re-checks
// authoritatively, so these caps are an optimistic first line of defense.
type CartService struct {
	store store.Store
	log   *zap.Logger
}

func NewCartService(st store.Store, log *zap.Logger) *CartService {
	return &CartService{store: st, log: log}
}

// AddToCart creates a line with quantity 1, or bumps an existing line by 1.
// The unit price is snapshotted from the offering when the line is created
// and never re-read afterwards.
func (s *CartService) AddToCart(ctx context.Context, buyerID, offeringID uint) error {
	off, err := s.store.GetOffering(ctx, offeringID)
	if err != nil {
		return err
	}
	cart, err := s.store.GetOrCreateCart(ctx, buyerID)
	if err != nil {
		return err
	}
	line, err := s.store.GetCartLine(ctx, cart.ID, offeringID)
	if errors.Is(err, models.ErrNotFound) {
		if off.Quantity < 1 {
			return models.ErrInsufficientInventory
		}
		return s.store.CreateCartLine(ctx, &models.CartLine{
			CartID:     cart.ID,
			OfferingID: offeringID,
			Quantity:   1,
			UnitPrice:  off.Price,
			InCart:     true,
			AddedAt:    time.Now(),
		})
	}
	if err != nil {
		return err
	}
	if line.Quantity+1 > off.Quantity {
		return models.ErrInsufficientInventory
	}
	return s.store.UpdateCartLineQuantity(ctx, cart.ID, offeringID, line.Quantity+1)
}

// SetQuantity replaces a line's quantity. The existing quantity is left
// untouched on rejection.
func (s *CartService) SetQuantity(ctx context.Context, buyerID, offeringID uint, quantity int) error {
	if quantity <= 0 {
		return models.ErrInvalidQuantity
	}
	off, err := s.store.GetOffering(ctx, offeringID)
	if err != nil {
		return err
	}
	if quantity > off.Quantity {
		return models.ErrInsufficientInventory
	}
	cart, err := s.store.GetOrCreateCart(ctx, buyerID)
	if err != nil {
		return err
	}
	return s.store.UpdateCartLineQuantity(ctx, cart.ID, offeringID, quantity)
}

// Remove deletes a line. Removing a line that does not exist is a success.
func (s *CartService) Remove(ctx context.Context, buyerID, offeringID uint) error {
	cart, err := s.store.GetOrCreateCart(ctx, buyerID)
	if err != nil {
		return err
	}
	return s.store.DeleteCartLine(ctx, cart.ID, offeringID)
}

func (s *CartService) SaveForLater(ctx context.Context, buyerID, offeringID uint) error {
	cart, err := s.store.GetOrCreateCart(ctx, buyerID)
	if err != nil {
		return err
	}
	return s.store.SetCartLineInCart(ctx, cart.ID, offeringID, false)
}

func (s *CartService) MoveToCart(ctx context.Context, buyerID, offeringID uint) error {
	cart, err := s.store.GetOrCreateCart(ctx, buyerID)
	if err != nil {
		return err
	}
	return s.store.SetCartLineInCart(ctx, cart.ID, offeringID, true)
}

func (s *CartService) ListActive(ctx context.Context, buyerID uint) ([]models.CartLine, error) {
	return s.list(ctx, buyerID, true)
}

func (s *CartService) ListSaved(ctx context.Context, buyerID uint) ([]models.CartLine, error) {
	return s.list(ctx, buyerID, false)
}

func (s *CartService) list(ctx context.Context, buyerID uint, inCart bool) ([]models.CartLine, error) {
	cart, err := s.store.GetOrCreateCart(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	return s.store.ListCartLines(ctx, cart.ID, inCart)
}

// Summary aggregates the active lines: total price (snapshot price times
// quantity) and total item count.
func (s *CartService) Summary(ctx context.Context, buyerID uint) (decimal.Decimal, int, error) {
	lines, err := s.ListActive(ctx, buyerID)
	if err != nil {
		return decimal.Zero, 0, err
	}
	total := decimal.Zero
	items := 0
	for _, l := range lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		items += l.Quantity
	}
	return total, items, nil
}
