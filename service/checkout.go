package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zaxiang/Mini-Amazon/metrics"
	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/store"
)

// CheckoutService converts a buyer's active cart lines into an order,
// decrements inventory and moves funds from the buyer to each seller. The
// whole conversion runs inside one store transaction: any failure rolls
// back every effect, so a buyer can never be charged for a partial order.
type CheckoutService struct {
	store store.Store
	log   *zap.Logger
}

func NewCheckoutService(st store.Store, log *zap.Logger) *CheckoutService {
	return &CheckoutService{store: st, log: log}
}

func orderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout attempts to purchase every active cart line. Lines are priced by
// the snapshot taken at add-to-cart time, not the offering's current price;
// availability is re-checked authoritatively under the offering row lock.
func (s *CheckoutService) Checkout(ctx context.Context, buyerID uint) (uint, error) {
	start := time.Now()
	var orderID uint
	err := s.store.Transact(ctx, func(tx store.Store) error {
		cart, err := tx.GetOrCreateCart(ctx, buyerID)
		if err != nil {
			return err
		}
		lines, err := tx.ListCartLines(ctx, cart.ID, true)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return models.ErrEmptyCart
		}

		// Lock offerings in ascending id order so concurrent checkouts
		// cannot deadlock against each other.
		sort.Slice(lines, func(i, j int) bool {
			return lines[i].OfferingID < lines[j].OfferingID
		})

		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}

		buyer, err := tx.GetUserForUpdate(ctx, buyerID)
		if err != nil {
			return err
		}
		if buyer.Balance.LessThan(total) {
			return models.ErrInsufficientFunds
		}

		order := &models.Order{
			BuyerID:   buyerID,
			OrderRef:  orderRef(),
			Status:    models.FulfillmentPending,
			CreatedAt: time.Now(),
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		for _, l := range lines {
			off, err := tx.GetOfferingForUpdate(ctx, l.OfferingID)
			if err != nil {
				return err
			}
			if off.Quantity < l.Quantity {
				return models.ErrInsufficientInventory
			}
			line := &models.OrderLine{
				OrderID:    order.ID,
				OfferingID: off.ID,
				SellerID:   off.SellerID,
				UnitPrice:  l.UnitPrice,
				Quantity:   l.Quantity,
				Status:     models.FulfillmentPending,
			}
			if err := tx.CreateOrderLine(ctx, line); err != nil {
				return err
			}
			if err := tx.UpdateOfferingQuantity(ctx, off.ID, off.Quantity-l.Quantity); err != nil {
				return err
			}
			seller, err := tx.GetUserForUpdate(ctx, off.SellerID)
			if err != nil {
				return err
			}
			credit := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
			if err := tx.UpdateUserBalance(ctx, seller.ID, seller.Balance.Add(credit)); err != nil {
				return err
			}
		}

		// Re-read the buyer: if they bought from themselves the seller
		// credit above already moved their balance.
		buyer, err = tx.GetUserForUpdate(ctx, buyerID)
		if err != nil {
			return err
		}
		if err := tx.UpdateUserBalance(ctx, buyerID, buyer.Balance.Sub(total)); err != nil {
			return err
		}

		if err := tx.DeleteActiveCartLines(ctx, cart.ID); err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})

	metrics.CheckoutDuration.Observe(time.Since(start).Seconds())
	metrics.CheckoutAttempts.WithLabelValues(checkoutResult(err)).Inc()

	if err != nil {
		if isBusinessErr(err) {
			s.log.Info("checkout rejected",
				zap.Uint("buyer_id", buyerID),
				zap.String("reason", err.Error()))
		} else {
			s.log.Error("checkout failed",
				zap.Uint("buyer_id", buyerID),
				zap.Error(err))
		}
		return 0, err
	}
	s.log.Info("checkout complete",
		zap.Uint("buyer_id", buyerID),
		zap.Uint("order_id", orderID))
	return orderID, nil
}

func checkoutResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, models.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, models.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, models.ErrInsufficientInventory):
		return "insufficient_inventory"
	default:
		return "error"
	}
}

func isBusinessErr(err error) bool {
	return errors.Is(err, models.ErrEmptyCart) ||
		errors.Is(err, models.ErrInsufficientFunds) ||
		errors.Is(err, models.ErrInsufficientInventory)
}
