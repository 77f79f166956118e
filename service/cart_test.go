package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaxiang/Mini-Amazon/models"
)

func TestAddToCartCreatesThenIncrements(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "100")
	off := seedOffering(t, st, seller.ID, 2, "10")

	require.NoError(t, svc.Cart.AddToCart(ctx, buyer.ID, off.ID))
	require.NoError(t, svc.Cart.AddToCart(ctx, buyer.ID, off.ID))

	lines, err := svc.Cart.ListActive(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	// A third unit exceeds the available quantity.
	err = svc.Cart.AddToCart(ctx, buyer.ID, off.ID)
	assert.ErrorIs(t, err, models.ErrInsufficientInventory)
}

func TestAddToCartUnknownOffering(t *testing.T) {
	svc, st := newTestRegistry()
	buyer := seedUser(t, st, "buyer@example.com", "100")

	err := svc.Cart.AddToCart(context.Background(), buyer.ID, 9999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSetQuantityValidation(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "100")
	off := seedOffering(t, st, seller.ID, 5, "10")

	addToCart(t, svc, buyer.ID, off.ID, 2)

	err := svc.Cart.SetQuantity(ctx, buyer.ID, off.ID, 0)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	err = svc.Cart.SetQuantity(ctx, buyer.ID, off.ID, 6)
	assert.ErrorIs(t, err, models.ErrInsufficientInventory)

	// Rejections leave the old quantity in place.
	lines, err := svc.Cart.ListActive(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	require.NoError(t, svc.Cart.SetQuantity(ctx, buyer.ID, off.ID, 5))
	lines, err = svc.Cart.ListActive(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestRemoveMissingLineIsSuccess(t *testing.T) {
	svc, st := newTestRegistry()
	buyer := seedUser(t, st, "buyer@example.com", "100")

	assert.NoError(t, svc.Cart.Remove(context.Background(), buyer.ID, 9999))
}

func TestSaveForLaterRoundTrip(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "100")
	off := seedOffering(t, st, seller.ID, 5, "10")

	addToCart(t, svc, buyer.ID, off.ID, 2)
	require.NoError(t, svc.Cart.SaveForLater(ctx, buyer.ID, off.ID))

	active, err := svc.Cart.ListActive(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, active)

	saved, err := svc.Cart.ListSaved(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, 2, saved[0].Quantity, "quantity survives the move")

	require.NoError(t, svc.Cart.MoveToCart(ctx, buyer.ID, off.ID))
	active, err = svc.Cart.ListActive(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestCartLinePriceIsSnapshotted(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "100")
	off := seedOffering(t, st, seller.ID, 5, "10")

	addToCart(t, svc, buyer.ID, off.ID, 1)

	off.Price = decimal.RequireFromString("42")
	require.NoError(t, st.UpdateOffering(ctx, off))

	lines, err := svc.Cart.ListActive(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	requireDecimalEqual(t, "10", lines[0].UnitPrice)
}

func TestCartSummary(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "100")
	offA := seedOffering(t, st, seller.ID, 5, "10")
	offB := seedOffering(t, st, seller.ID, 5, "2.50")

	addToCart(t, svc, buyer.ID, offA.ID, 2)
	addToCart(t, svc, buyer.ID, offB.ID, 3)

	total, items, err := svc.Cart.Summary(ctx, buyer.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, "27.50", total)
	assert.Equal(t, 5, items)

	// Saved lines do not count.
	require.NoError(t, svc.Cart.SaveForLater(ctx, buyer.ID, offB.ID))
	total, items, err = svc.Cart.Summary(ctx, buyer.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, "20", total)
	assert.Equal(t, 2, items)
}

func TestListActiveOrdersByPriceDesc(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "100")
	cheap := seedOffering(t, st, seller.ID, 5, "1")
	dear := seedOffering(t, st, seller.ID, 5, "9")

	addToCart(t, svc, buyer.ID, cheap.ID, 1)
	addToCart(t, svc, buyer.ID, dear.ID, 1)

	lines, err := svc.Cart.ListActive(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, dear.ID, lines[0].OfferingID)
	assert.Equal(t, cheap.ID, lines[1].OfferingID)
}
