package memstore

import (
	"context"

	"github.com/zaxiang/Mini-Amazon/models"
)

func (t *memTx) GetOffering(ctx context.Context, id uint) (*models.Offering, error) {
	o, ok := t.st.offerings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

// The store mutex is held for the whole Transact, so a plain read already
// has the row "locked".
func (t *memTx) GetOfferingForUpdate(ctx context.Context, id uint) (*models.Offering, error) {
	return t.GetOffering(ctx, id)
}

func (t *memTx) CreateOffering(ctx context.Context, o *models.Offering) error {
	if o.ID == 0 {
		o.ID = t.st.nextID()
	}
	cp := *o
	t.st.offerings[o.ID] = &cp
	return nil
}

func (t *memTx) UpdateOffering(ctx context.Context, o *models.Offering) error {
	cp := *o
	t.st.offerings[o.ID] = &cp
	return nil
}

func (t *memTx) UpdateOfferingQuantity(ctx context.Context, id uint, quantity int) error {
	if o, ok := t.st.offerings[id]; ok {
		o.Quantity = quantity
	}
	return nil
}

func (t *memTx) DeleteOffering(ctx context.Context, id uint) error {
	delete(t.st.offerings, id)
	return nil
}

func (t *memTx) ListOfferingsBySeller(ctx context.Context, sellerID uint) ([]models.Offering, error) {
	var out []models.Offering
	for _, o := range t.st.offerings {
		if o.SellerID == sellerID {
			out = append(out, *o)
		}
	}
	sortByID(out, func(o models.Offering) uint { return o.ID })
	return out, nil
}

func (t *memTx) OfferingReferenced(ctx context.Context, id uint) (bool, error) {
	for _, lines := range t.st.cartLines {
		if _, ok := lines[id]; ok {
			return true, nil
		}
	}
	for _, lines := range t.st.orderLines {
		if _, ok := lines[id]; ok {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemStore) GetOffering(ctx context.Context, id uint) (*models.Offering, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().GetOffering(ctx, id)
}

func (m *MemStore) GetOfferingForUpdate(ctx context.Context, id uint) (*models.Offering, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().GetOfferingForUpdate(ctx, id)
}

func (m *MemStore) CreateOffering(ctx context.Context, o *models.Offering) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().CreateOffering(ctx, o)
}

func (m *MemStore) UpdateOffering(ctx context.Context, o *models.Offering) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().UpdateOffering(ctx, o)
}

func (m *MemStore) UpdateOfferingQuantity(ctx context.Context, id uint, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().UpdateOfferingQuantity(ctx, id, quantity)
}

func (m *MemStore) DeleteOffering(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().DeleteOffering(ctx, id)
}

func (m *MemStore) ListOfferingsBySeller(ctx context.Context, sellerID uint) ([]models.Offering, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().ListOfferingsBySeller(ctx, sellerID)
}

func (m *MemStore) OfferingReferenced(ctx context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().OfferingReferenced(ctx, id)
}
