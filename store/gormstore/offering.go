package gormstore

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/zaxiang/Mini-Amazon/models"
)

func (s *GormStore) GetOffering(ctx context.Context, id uint) (*models.Offering, error) {
	var o models.Offering
	if err := s.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (s *GormStore) GetOfferingForUpdate(ctx context.Context, id uint) (*models.Offering, error) {
	var o models.Offering
	if err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&o, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (s *GormStore) CreateOffering(ctx context.Context, o *models.Offering) error {
	return s.db.WithContext(ctx).Create(o).Error
}

func (s *GormStore) UpdateOffering(ctx context.Context, o *models.Offering) error {
	return s.db.WithContext(ctx).Save(o).Error
}

func (s *GormStore) UpdateOfferingQuantity(ctx context.Context, id uint, quantity int) error {
	return s.db.WithContext(ctx).
		Model(&models.Offering{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (s *GormStore) DeleteOffering(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Offering{}, "id = ?", id).Error
}

func (s *GormStore) ListOfferingsBySeller(ctx context.Context, sellerID uint) ([]models.Offering, error) {
	var offerings []models.Offering
	if err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id").
		Find(&offerings).Error; err != nil {
		return nil, err
	}
	return offerings, nil
}

func (s *GormStore) OfferingReferenced(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).
		Model(&models.CartLine{}).
		Where("offering_id = ?", id).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := s.db.WithContext(ctx).
		Model(&models.OrderLine{}).
		Where("offering_id = ?", id).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
