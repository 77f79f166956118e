package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaxiang/Mini-Amazon/models"
)

func TestCreateOfferingValidation(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()
	seller := seedUser(t, st, "seller@example.com", "0")

	_, err := svc.Inventory.CreateOffering(ctx, seller.ID, 1, -1, decimal.RequireFromString("10"))
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	_, err = svc.Inventory.CreateOffering(ctx, seller.ID, 1, 1, decimal.RequireFromString("-10"))
	assert.ErrorIs(t, err, models.ErrInvalidAmount)

	off, err := svc.Inventory.CreateOffering(ctx, seller.ID, 1, 0, decimal.RequireFromString("10"))
	require.NoError(t, err)
	assert.NotZero(t, off.ID, "zero quantity is a valid sold-out listing")
}

func TestUpdateOfferingOwnership(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	other := seedUser(t, st, "other@example.com", "0")
	off := seedOffering(t, st, seller.ID, 5, "10")

	err := svc.Inventory.UpdateOffering(ctx, other.ID, off.ID, 3, decimal.RequireFromString("10"))
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, svc.Inventory.UpdateOffering(ctx, seller.ID, off.ID, 3, decimal.RequireFromString("12")))
	assert.Equal(t, 3, availableOf(t, st, off.ID))
}

func TestPriceLockedWhileReferenced(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "100")
	off := seedOffering(t, st, seller.ID, 5, "10")

	addToCart(t, svc, buyer.ID, off.ID, 1)

	err := svc.Inventory.UpdateOffering(ctx, seller.ID, off.ID, 5, decimal.RequireFromString("12"))
	assert.ErrorIs(t, err, models.ErrPriceLocked)

	// Quantity-only updates stay allowed.
	require.NoError(t, svc.Inventory.UpdateOffering(ctx, seller.ID, off.ID, 9, decimal.RequireFromString("10")))
	assert.Equal(t, 9, availableOf(t, st, off.ID))

	// Order lines keep the price locked after checkout too.
	_, err = svc.Checkout.Checkout(ctx, buyer.ID)
	require.NoError(t, err)
	err = svc.Inventory.UpdateOffering(ctx, seller.ID, off.ID, 9, decimal.RequireFromString("12"))
	assert.ErrorIs(t, err, models.ErrPriceLocked)
}

func TestDeleteOfferingOwnership(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	other := seedUser(t, st, "other@example.com", "0")
	off := seedOffering(t, st, seller.ID, 5, "10")

	err := svc.Inventory.DeleteOffering(ctx, other.ID, off.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, svc.Inventory.DeleteOffering(ctx, seller.ID, off.ID))
	_, err = svc.Inventory.GetAvailable(ctx, off.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDecrement(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	off := seedOffering(t, st, seller.ID, 5, "10")

	remaining, err := svc.Inventory.Decrement(ctx, off.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)

	_, err = svc.Inventory.Decrement(ctx, off.ID, 3)
	assert.ErrorIs(t, err, models.ErrNegativeQuantity)
	assert.Equal(t, 2, availableOf(t, st, off.ID), "refused decrement must not change quantity")

	_, err = svc.Inventory.Decrement(ctx, off.ID, 0)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)
}

func TestListBySeller(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	other := seedUser(t, st, "other@example.com", "0")
	seedOffering(t, st, seller.ID, 5, "10")
	seedOffering(t, st, seller.ID, 5, "20")
	seedOffering(t, st, other.ID, 5, "30")

	offs, err := svc.Inventory.ListBySeller(ctx, seller.ID)
	require.NoError(t, err)
	assert.Len(t, offs, 2)
}
