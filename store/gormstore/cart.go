package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zaxiang/Mini-Amazon/models"
)

func (s *GormStore) GetOrCreateCart(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := s.db.WithContext(ctx).Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *GormStore) GetCartLine(ctx context.Context, cartID, offeringID uint) (*models.CartLine, error) {
	var line models.CartLine
	if err := s.db.WithContext(ctx).
		Where("cart_id = ? AND offering_id = ?", cartID, offeringID).
		First(&line).Error; err != nil {
		return nil, notFound(err)
	}
	return &line, nil
}

func (s *GormStore) ListCartLines(ctx context.Context, cartID uint, inCart bool) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := s.db.WithContext(ctx).
		Where("cart_id = ? AND in_cart = ?", cartID, inCart).
		Order("unit_price DESC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *GormStore) CreateCartLine(ctx context.Context, line *models.CartLine) error {
	return s.db.WithContext(ctx).Create(line).Error
}

func (s *GormStore) UpdateCartLineQuantity(ctx context.Context, cartID, offeringID uint, quantity int) error {
	return s.db.WithContext(ctx).
		Model(&models.CartLine{}).
		Where("cart_id = ? AND offering_id = ?", cartID, offeringID).
		Update("quantity", quantity).Error
}

func (s *GormStore) SetCartLineInCart(ctx context.Context, cartID, offeringID uint, inCart bool) error {
	return s.db.WithContext(ctx).
		Model(&models.CartLine{}).
		Where("cart_id = ? AND offering_id = ?", cartID, offeringID).
		Update("in_cart", inCart).Error
}

func (s *GormStore) DeleteCartLine(ctx context.Context, cartID, offeringID uint) error {
	return s.db.WithContext(ctx).
		Where("cart_id = ? AND offering_id = ?", cartID, offeringID).
		Delete(&models.CartLine{}).Error
}

func (s *GormStore) DeleteActiveCartLines(ctx context.Context, cartID uint) error {
	return s.db.WithContext(ctx).
		Where("cart_id = ? AND in_cart = ?", cartID, true).
		Delete(&models.CartLine{}).Error
}
