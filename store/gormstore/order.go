package gormstore

import (
	"context"
	"time"

	"github.com/zaxiang/Mini-Amazon/models"
)

func (s *GormStore) CreateOrder(ctx context.Context, o *models.Order) error {
	return s.db.WithContext(ctx).Create(o).Error
}

func (s *GormStore) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	if err := s.db.WithContext(ctx).
		Preload("Lines").
		First(&o, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (s *GormStore) ListOrdersByBuyer(ctx context.Context, buyerID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Preload("Lines").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStore) ListOrdersBySeller(ctx context.Context, sellerID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).
		Joins("JOIN order_lines ON order_lines.order_id = orders.id").
		Where("order_lines.seller_id = ?", sellerID).
		Group("orders.id").
		Preload("Lines").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStore) CreateOrderLine(ctx context.Context, line *models.OrderLine) error {
	return s.db.WithContext(ctx).Create(line).Error
}

func (s *GormStore) GetOrderLine(ctx context.Context, orderID, offeringID uint) (*models.OrderLine, error) {
	var line models.OrderLine
	if err := s.db.WithContext(ctx).
		Where("order_id = ? AND offering_id = ?", orderID, offeringID).
		First(&line).Error; err != nil {
		return nil, notFound(err)
	}
	return &line, nil
}

func (s *GormStore) MarkOrderLineFulfilled(ctx context.Context, orderID, offeringID uint, at time.Time) (bool, error) {
	line, err := s.GetOrderLine(ctx, orderID, offeringID)
	if err != nil {
		return false, err
	}
	if line.Status == models.FulfillmentFulfilled {
		return false, nil
	}
	err = s.db.WithContext(ctx).
		Model(&models.OrderLine{}).
		Where("order_id = ? AND offering_id = ? AND status <> ?",
			orderID, offeringID, models.FulfillmentFulfilled).
		Updates(map[string]interface{}{
			"status":       models.FulfillmentFulfilled,
			"fulfilled_at": at,
		}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *GormStore) CountUnfulfilledLines(ctx context.Context, orderID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.OrderLine{}).
		Where("order_id = ? AND status <> ?", orderID, models.FulfillmentFulfilled).
		Count(&n).Error
	return n, err
}

func (s *GormStore) MarkOrderFulfilled(ctx context.Context, orderID uint, at time.Time) error {
	return s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":       models.FulfillmentFulfilled,
			"fulfilled_at": at,
		}).Error
}
