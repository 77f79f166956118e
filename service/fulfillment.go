package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/zaxiang/Mini-Amazon/metrics"
	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/store"
)

// FulfillmentService drives the per-line fulfillment state machine and the
// derived order aggregate. Lines move pending -> fulfilled exactly once;
// the order flips to fulfilled only when its last line does.
type FulfillmentService struct {
	store store.Store
	log   *zap.Logger
}

func NewFulfillmentService(st store.Store, log *zap.Logger) *FulfillmentService {
	return &FulfillmentService{store: st, log: log}
}

// MarkLineFulfilled stamps a line fulfilled and recomputes the order
// aggregate in the same transaction. Marking an already-fulfilled line is a
// no-op, not an error; the aggregate is still recomputed.
func (s *FulfillmentService) MarkLineFulfilled(ctx context.Context, orderID, offeringID uint) (bool, error) {
	var changed bool
	var orderDone bool
	err := s.store.Transact(ctx, func(tx store.Store) error {
		now := time.Now()
		ch, err := tx.MarkOrderLineFulfilled(ctx, orderID, offeringID, now)
		if err != nil {
			return err
		}
		changed = ch
		remaining, err := tx.CountUnfulfilledLines(ctx, orderID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			order, err := tx.GetOrder(ctx, orderID)
			if err != nil {
				return err
			}
			if order.Status != models.FulfillmentFulfilled {
				if err := tx.MarkOrderFulfilled(ctx, orderID, now); err != nil {
					return err
				}
				orderDone = true
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if changed {
		metrics.LinesFulfilled.Inc()
		s.log.Info("order line fulfilled",
			zap.Uint("order_id", orderID),
			zap.Uint("offering_id", offeringID))
	}
	if orderDone {
		metrics.OrdersFulfilled.Inc()
		s.log.Info("order fulfilled", zap.Uint("order_id", orderID))
	}
	return changed, nil
}

func (s *FulfillmentService) GetOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	return s.store.GetOrder(ctx, orderID)
}

func (s *FulfillmentService) ListOrdersByBuyer(ctx context.Context, buyerID uint) ([]models.Order, error) {
	return s.store.ListOrdersByBuyer(ctx, buyerID)
}

func (s *FulfillmentService) ListOrdersBySeller(ctx context.Context, sellerID uint) ([]models.Order, error) {
	return s.store.ListOrdersBySeller(ctx, sellerID)
}
