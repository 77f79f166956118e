package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/store"
)

// InventoryService manages seller offerings and the quantity primitive.
// There is no reservation mechanism: availability is checked optimistically
// at cart time and authoritatively under the row lock at checkout time.
type InventoryService struct {
	store store.Store
	log   *zap.Logger
}

func NewInventoryService(st store.Store, log *zap.Logger) *InventoryService {
	return &InventoryService{store: st, log: log}
}

func (s *InventoryService) CreateOffering(ctx context.Context, sellerID, productID uint, quantity int, price decimal.Decimal) (*models.Offering, error) {
	if quantity < 0 {
		return nil, models.ErrInvalidQuantity
	}
	if price.IsNegative() {
		return nil, models.ErrInvalidAmount
	}
	off := &models.Offering{
		SellerID:  sellerID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
	if err := s.store.CreateOffering(ctx, off); err != nil {
		return nil, err
	}
	return off, nil
}

func (s *InventoryService) ListBySeller(ctx context.Context, sellerID uint) ([]models.Offering, error) {
	return s.store.ListOfferingsBySeller(ctx, sellerID)
}

func (s *InventoryService) GetAvailable(ctx context.Context, offeringID uint) (int, error) {
	off, err := s.store.GetOffering(ctx, offeringID)
	if err != nil {
		return 0, err
	}
	return off.Quantity, nil
}

// UpdateOffering replaces quantity and price. A price change is rejected
// while any open cart line or order line references the offering; buyers
// keep the price snapshotted when they added the item.
func (s *InventoryService) UpdateOffering(ctx context.Context, sellerID, offeringID uint, quantity int, price decimal.Decimal) error {
	if quantity < 0 {
		return models.ErrInvalidQuantity
	}
	if price.IsNegative() {
		return models.ErrInvalidAmount
	}
	return s.store.Transact(ctx, func(tx store.Store) error {
		off, err := tx.GetOfferingForUpdate(ctx, offeringID)
		if err != nil {
			return err
		}
		if off.SellerID != sellerID {
			return models.ErrNotFound
		}
		if !price.Equal(off.Price) {
			referenced, err := tx.OfferingReferenced(ctx, offeringID)
			if err != nil {
				return err
			}
			if referenced {
				return models.ErrPriceLocked
			}
			off.Price = price
		}
		off.Quantity = quantity
		return tx.UpdateOffering(ctx, off)
	})
}

func (s *InventoryService) DeleteOffering(ctx context.Context, sellerID, offeringID uint) error {
	off, err := s.store.GetOffering(ctx, offeringID)
	if err != nil {
		return err
	}
	if off.SellerID != sellerID {
		return models.ErrNotFound
	}
	return s.store.DeleteOffering(ctx, offeringID)
}

// Decrement lowers the available quantity, refusing to cross zero. The
// checks upstream make ErrNegativeQuantity unreachable in normal operation,
// so hitting it is logged as a defect.
func (s *InventoryService) Decrement(ctx context.Context, offeringID uint, amount int) (int, error) {
	if amount <= 0 {
		return 0, models.ErrInvalidQuantity
	}
	var remaining int
	err := s.store.Transact(ctx, func(tx store.Store) error {
		off, err := tx.GetOfferingForUpdate(ctx, offeringID)
		if err != nil {
			return err
		}
		if off.Quantity < amount {
			s.log.Error("inventory decrement below zero refused",
				zap.Uint("offering_id", offeringID),
				zap.Int("available", off.Quantity),
				zap.Int("amount", amount))
			return models.ErrNegativeQuantity
		}
		remaining = off.Quantity - amount
		return tx.UpdateOfferingQuantity(ctx, offeringID, remaining)
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}
