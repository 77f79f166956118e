package gormstore

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"

	"github.com/zaxiang/Mini-Amazon/models"
)

func (s *GormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *GormStore) GetUserForUpdate(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *GormStore) UpdateUserBalance(ctx context.Context, id uint, balance decimal.Decimal) error {
	return s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("balance", balance).Error
}
