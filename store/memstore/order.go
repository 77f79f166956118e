package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/zaxiang/Mini-Amazon/models"
)

func (t *memTx) CreateOrder(ctx context.Context, o *models.Order) error {
	if o.ID == 0 {
		o.ID = t.st.nextID()
	}
	cp := *o
	cp.Lines = nil // lines live in their own table
	t.st.orders[o.ID] = &cp
	t.st.orderLines[o.ID] = make(map[uint]*models.OrderLine)
	return nil
}

func (t *memTx) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	o, ok := t.st.orders[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *o
	cp.FulfilledAt = copyTime(o.FulfilledAt)
	cp.Lines = t.linesOf(id)
	return &cp, nil
}

func (t *memTx) linesOf(orderID uint) []models.OrderLine {
	var lines []models.OrderLine
	for _, l := range t.st.orderLines[orderID] {
		cp := *l
		cp.FulfilledAt = copyTime(l.FulfilledAt)
		lines = append(lines, cp)
	}
	sortByID(lines, func(l models.OrderLine) uint { return l.ID })
	return lines
}

func (t *memTx) ListOrdersByBuyer(ctx context.Context, buyerID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range t.st.orders {
		if o.BuyerID == buyerID {
			cp := *o
			cp.FulfilledAt = copyTime(o.FulfilledAt)
			cp.Lines = t.linesOf(o.ID)
			out = append(out, cp)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (t *memTx) ListOrdersBySeller(ctx context.Context, sellerID uint) ([]models.Order, error) {
	var out []models.Order
	for oid, lines := range t.st.orderLines {
		for _, l := range lines {
			if l.SellerID == sellerID {
				o := t.st.orders[oid]
				cp := *o
				cp.FulfilledAt = copyTime(o.FulfilledAt)
				cp.Lines = t.linesOf(oid)
				out = append(out, cp)
				break
			}
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
}

func (t *memTx) CreateOrderLine(ctx context.Context, line *models.OrderLine) error {
	if line.ID == 0 {
		line.ID = t.st.nextID()
	}
	if t.st.orderLines[line.OrderID] == nil {
		t.st.orderLines[line.OrderID] = make(map[uint]*models.OrderLine)
	}
	cp := *line
	t.st.orderLines[line.OrderID][line.OfferingID] = &cp
	return nil
}

func (t *memTx) GetOrderLine(ctx context.Context, orderID, offeringID uint) (*models.OrderLine, error) {
	l, ok := t.st.orderLines[orderID][offeringID]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *l
	cp.FulfilledAt = copyTime(l.FulfilledAt)
	return &cp, nil
}

func (t *memTx) MarkOrderLineFulfilled(ctx context.Context, orderID, offeringID uint, at time.Time) (bool, error) {
	l, ok := t.st.orderLines[orderID][offeringID]
	if !ok {
		return false, models.ErrNotFound
	}
	if l.Status == models.FulfillmentFulfilled {
		return false, nil
	}
	l.Status = models.FulfillmentFulfilled
	stamp := at
	l.FulfilledAt = &stamp
	return true, nil
}

func (t *memTx) CountUnfulfilledLines(ctx context.Context, orderID uint) (int64, error) {
	var n int64
	for _, l := range t.st.orderLines[orderID] {
		if l.Status != models.FulfillmentFulfilled {
			n++
		}
	}
	return n, nil
}

func (t *memTx) MarkOrderFulfilled(ctx context.Context, orderID uint, at time.Time) error {
	o, ok := t.st.orders[orderID]
	if !ok {
		return models.ErrNotFound
	}
	o.Status = models.FulfillmentFulfilled
	stamp := at
	o.FulfilledAt = &stamp
	return nil
}

func (m *MemStore) CreateOrder(ctx context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().CreateOrder(ctx, o)
}

func (m *MemStore) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().GetOrder(ctx, id)
}

func (m *MemStore) ListOrdersByBuyer(ctx context.Context, buyerID uint) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().ListOrdersByBuyer(ctx, buyerID)
}

func (m *MemStore) ListOrdersBySeller(ctx context.Context, sellerID uint) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().ListOrdersBySeller(ctx, sellerID)
}

func (m *MemStore) CreateOrderLine(ctx context.Context, line *models.OrderLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().CreateOrderLine(ctx, line)
}

func (m *MemStore) GetOrderLine(ctx context.Context, orderID, offeringID uint) (*models.OrderLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().GetOrderLine(ctx, orderID, offeringID)
}

func (m *MemStore) MarkOrderLineFulfilled(ctx context.Context, orderID, offeringID uint, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().MarkOrderLineFulfilled(ctx, orderID, offeringID, at)
}

func (m *MemStore) CountUnfulfilledLines(ctx context.Context, orderID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().CountUnfulfilledLines(ctx, orderID)
}

func (m *MemStore) MarkOrderFulfilled(ctx context.Context, orderID uint, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().MarkOrderFulfilled(ctx, orderID, at)
}
