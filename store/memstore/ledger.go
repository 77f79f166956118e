package memstore

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/zaxiang/Mini-Amazon/models"
)

func (t *memTx) GetUser(ctx context.Context, id uint) (*models.User, error) {
	u, ok := t.st.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (t *memTx) GetUserForUpdate(ctx context.Context, id uint) (*models.User, error) {
	return t.GetUser(ctx, id)
}

func (t *memTx) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == 0 {
		u.ID = t.st.nextID()
	}
	cp := *u
	t.st.users[u.ID] = &cp
	return nil
}

func (t *memTx) UpdateUserBalance(ctx context.Context, id uint, balance decimal.Decimal) error {
	if u, ok := t.st.users[id]; ok {
		u.Balance = balance
	}
	return nil
}

func (m *MemStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().GetUser(ctx, id)
}

func (m *MemStore) GetUserForUpdate(ctx context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().GetUserForUpdate(ctx, id)
}

func (m *MemStore) CreateUser(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().CreateUser(ctx, u)
}

func (m *MemStore) UpdateUserBalance(ctx context.Context, id uint, balance decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().UpdateUserBalance(ctx, id, balance)
}
