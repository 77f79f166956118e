package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/zaxiang/Mini-Amazon/models"
)

func (t *memTx) GetOrCreateCart(ctx context.Context, userID uint) (*models.Cart, error) {
	if cid, ok := t.st.cartByUser[userID]; ok {
		cp := *t.st.carts[cid]
		return &cp, nil
	}
	cart := &models.Cart{ID: t.st.nextID(), UserID: userID, CreatedAt: time.Now()}
	t.st.carts[cart.ID] = cart
	t.st.cartByUser[userID] = cart.ID
	t.st.cartLines[cart.ID] = make(map[uint]*models.CartLine)
	cp := *cart
	return &cp, nil
}

func (t *memTx) GetCartLine(ctx context.Context, cartID, offeringID uint) (*models.CartLine, error) {
	line, ok := t.st.cartLines[cartID][offeringID]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *line
	return &cp, nil
}

func (t *memTx) ListCartLines(ctx context.Context, cartID uint, inCart bool) ([]models.CartLine, error) {
	var out []models.CartLine
	for _, line := range t.st.cartLines[cartID] {
		if line.InCart == inCart {
			out = append(out, *line)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].UnitPrice.Cmp(out[j].UnitPrice); c != 0 {
			return c > 0
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (t *memTx) CreateCartLine(ctx context.Context, line *models.CartLine) error {
	if line.ID == 0 {
		line.ID = t.st.nextID()
	}
	if t.st.cartLines[line.CartID] == nil {
		t.st.cartLines[line.CartID] = make(map[uint]*models.CartLine)
	}
	cp := *line
	t.st.cartLines[line.CartID][line.OfferingID] = &cp
	return nil
}

func (t *memTx) UpdateCartLineQuantity(ctx context.Context, cartID, offeringID uint, quantity int) error {
	if line, ok := t.st.cartLines[cartID][offeringID]; ok {
		line.Quantity = quantity
	}
	return nil
}

func (t *memTx) SetCartLineInCart(ctx context.Context, cartID, offeringID uint, inCart bool) error {
	if line, ok := t.st.cartLines[cartID][offeringID]; ok {
		line.InCart = inCart
	}
	return nil
}

func (t *memTx) DeleteCartLine(ctx context.Context, cartID, offeringID uint) error {
	delete(t.st.cartLines[cartID], offeringID)
	return nil
}

func (t *memTx) DeleteActiveCartLines(ctx context.Context, cartID uint) error {
	for oid, line := range t.st.cartLines[cartID] {
		if line.InCart {
			delete(t.st.cartLines[cartID], oid)
		}
	}
	return nil
}

func (m *MemStore) GetOrCreateCart(ctx context.Context, userID uint) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().GetOrCreateCart(ctx, userID)
}

func (m *MemStore) GetCartLine(ctx context.Context, cartID, offeringID uint) (*models.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().GetCartLine(ctx, cartID, offeringID)
}

func (m *MemStore) ListCartLines(ctx context.Context, cartID uint, inCart bool) ([]models.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().ListCartLines(ctx, cartID, inCart)
}

func (m *MemStore) CreateCartLine(ctx context.Context, line *models.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().CreateCartLine(ctx, line)
}

func (m *MemStore) UpdateCartLineQuantity(ctx context.Context, cartID, offeringID uint, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().UpdateCartLineQuantity(ctx, cartID, offeringID, quantity)
}

func (m *MemStore) SetCartLineInCart(ctx context.Context, cartID, offeringID uint, inCart bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().SetCartLineInCart(ctx, cartID, offeringID, inCart)
}

func (m *MemStore) DeleteCartLine(ctx context.Context, cartID, offeringID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().DeleteCartLine(ctx, cartID, offeringID)
}

func (m *MemStore) DeleteActiveCartLines(ctx context.Context, cartID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().DeleteActiveCartLines(ctx, cartID)
}
