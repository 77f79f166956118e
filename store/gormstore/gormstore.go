// Package gormstore implements store.Store on top of gorm/postgres.
// Transact maps to a database transaction; the ForUpdate reads take
// SELECT ... FOR UPDATE row locks.
package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/store"
)

type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transact(ctx context.Context, fn func(store.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// notFound converts gorm's record-not-found into the core sentinel.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}
