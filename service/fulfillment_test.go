package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/service"
	"github.com/zaxiang/Mini-Amazon/store/memstore"
)

// placeOrder checks out a fresh two-line order and returns its id plus the
// two offering ids.
func placeOrder(t *testing.T, ctx context.Context, svc *service.Registry, st *memstore.MemStore) (orderID, offA, offB uint) {
	t.Helper()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "100")
	a := seedOffering(t, st, seller.ID, 5, "10")
	b := seedOffering(t, st, seller.ID, 5, "15")

	addToCart(t, svc, buyer.ID, a.ID, 1)
	addToCart(t, svc, buyer.ID, b.ID, 1)

	id, err := svc.Checkout.Checkout(ctx, buyer.ID)
	require.NoError(t, err)
	return id, a.ID, b.ID
}

func TestFulfillmentAggregatesLineState(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()
	orderID, offA, offB := placeOrder(t, ctx, svc, st)

	changed, err := svc.Fulfillment.MarkLineFulfilled(ctx, orderID, offA)
	require.NoError(t, err)
	assert.True(t, changed)

	order, err := svc.Fulfillment.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.FulfillmentPending, order.Status, "one line still open")
	assert.Nil(t, order.FulfilledAt)

	changed, err = svc.Fulfillment.MarkLineFulfilled(ctx, orderID, offB)
	require.NoError(t, err)
	assert.True(t, changed)

	order, err = svc.Fulfillment.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.FulfillmentFulfilled, order.Status)
	require.NotNil(t, order.FulfilledAt)
	for _, l := range order.Lines {
		assert.Equal(t, models.FulfillmentFulfilled, l.Status)
		assert.NotNil(t, l.FulfilledAt)
	}
}

func TestFulfillmentIsIdempotent(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()
	orderID, offA, _ := placeOrder(t, ctx, svc, st)

	changed, err := svc.Fulfillment.MarkLineFulfilled(ctx, orderID, offA)
	require.NoError(t, err)
	assert.True(t, changed)

	line, err := st.GetOrderLine(ctx, orderID, offA)
	require.NoError(t, err)
	first := *line.FulfilledAt

	changed, err = svc.Fulfillment.MarkLineFulfilled(ctx, orderID, offA)
	require.NoError(t, err)
	assert.False(t, changed, "repeat fulfillment must be a no-op")

	line, err = st.GetOrderLine(ctx, orderID, offA)
	require.NoError(t, err)
	assert.True(t, first.Equal(*line.FulfilledAt), "timestamp must not move")
}

func TestFulfillmentUnknownLine(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()
	orderID, _, _ := placeOrder(t, ctx, svc, st)

	_, err := svc.Fulfillment.MarkLineFulfilled(ctx, orderID, 9999)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.Fulfillment.MarkLineFulfilled(ctx, 9999, 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListOrdersBySeller(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	sellerA := seedUser(t, st, "a@example.com", "0")
	sellerB := seedUser(t, st, "b@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "100")
	offA := seedOffering(t, st, sellerA.ID, 5, "10")
	offB := seedOffering(t, st, sellerB.ID, 5, "15")

	addToCart(t, svc, buyer.ID, offA.ID, 1)
	orderA, err := svc.Checkout.Checkout(ctx, buyer.ID)
	require.NoError(t, err)

	addToCart(t, svc, buyer.ID, offB.ID, 1)
	orderB, err := svc.Checkout.Checkout(ctx, buyer.ID)
	require.NoError(t, err)

	forA, err := svc.Fulfillment.ListOrdersBySeller(ctx, sellerA.ID)
	require.NoError(t, err)
	require.Len(t, forA, 1)
	assert.Equal(t, orderA, forA[0].ID)

	forB, err := svc.Fulfillment.ListOrdersBySeller(ctx, sellerB.ID)
	require.NoError(t, err)
	require.Len(t, forB, 1)
	assert.Equal(t, orderB, forB[0].ID)

	mine, err := svc.Fulfillment.ListOrdersByBuyer(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
