package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaxiang/Mini-Amazon/models"
)

func TestCheckoutHappyPath(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "100")
	off := seedOffering(t, st, seller.ID, 5, "10")

	addToCart(t, svc, buyer.ID, off.ID, 3)

	orderID, err := svc.Checkout.Checkout(ctx, buyer.ID)
	require.NoError(t, err)

	order, err := st.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, buyer.ID, order.BuyerID)
	assert.Equal(t, models.FulfillmentPending, order.Status)
	assert.NotEmpty(t, order.OrderRef)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, off.ID, order.Lines[0].OfferingID)
	assert.Equal(t, seller.ID, order.Lines[0].SellerID)
	assert.Equal(t, 3, order.Lines[0].Quantity)
	requireDecimalEqual(t, "10", order.Lines[0].UnitPrice)

	assert.Equal(t, 2, availableOf(t, st, off.ID))
	requireDecimalEqual(t, "70", balanceOf(t, st, buyer.ID))
	requireDecimalEqual(t, "30", balanceOf(t, st, seller.ID))

	// The active cart is consumed.
	lines, err := svc.Cart.ListActive(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, st := newTestRegistry()

	buyer := seedUser(t, st, "buyer@example.com", "100")

	_, err := svc.Checkout.Checkout(context.Background(), buyer.ID)
	assert.ErrorIs(t, err, models.ErrEmptyCart)
}

func TestCheckoutInsufficientFunds(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "5")
	off := seedOffering(t, st, seller.ID, 5, "10")

	addToCart(t, svc, buyer.ID, off.ID, 1)

	_, err := svc.Checkout.Checkout(ctx, buyer.ID)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)

	// Nothing moved.
	requireDecimalEqual(t, "5", balanceOf(t, st, buyer.ID))
	requireDecimalEqual(t, "0", balanceOf(t, st, seller.ID))
	assert.Equal(t, 5, availableOf(t, st, off.ID))

	lines, err := svc.Cart.ListActive(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCheckoutInsufficientInventoryRollsBackEverything(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "1000")
	offA := seedOffering(t, st, seller.ID, 10, "5")
	offB := seedOffering(t, st, seller.ID, 10, "7")

	addToCart(t, svc, buyer.ID, offA.ID, 2)
	addToCart(t, svc, buyer.ID, offB.ID, 4)

	// Stock for B drains between add-to-cart and checkout.
	require.NoError(t, st.UpdateOfferingQuantity(ctx, offB.ID, 1))

	_, err := svc.Checkout.Checkout(ctx, buyer.ID)
	assert.ErrorIs(t, err, models.ErrInsufficientInventory)

	// The partial decrement of A and the seller credit both rolled back.
	assert.Equal(t, 10, availableOf(t, st, offA.ID))
	assert.Equal(t, 1, availableOf(t, st, offB.ID))
	requireDecimalEqual(t, "1000", balanceOf(t, st, buyer.ID))
	requireDecimalEqual(t, "0", balanceOf(t, st, seller.ID))

	orders, err := st.ListOrdersByBuyer(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	lines, err := svc.Cart.ListActive(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestCheckoutChargesSnapshotPrice(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "100")
	off := seedOffering(t, st, seller.ID, 5, "10")

	addToCart(t, svc, buyer.ID, off.ID, 2)

	// A price change after the add must not affect this buyer.
	off.Price = decimal.RequireFromString("99")
	require.NoError(t, st.UpdateOffering(ctx, off))

	orderID, err := svc.Checkout.Checkout(ctx, buyer.ID)
	require.NoError(t, err)

	order, err := st.GetOrder(ctx, orderID)
	require.NoError(t, err)
	requireDecimalEqual(t, "10", order.Lines[0].UnitPrice)
	requireDecimalEqual(t, "80", balanceOf(t, st, buyer.ID))
	requireDecimalEqual(t, "20", balanceOf(t, st, seller.ID))
}

func TestCheckoutTwoLineCart(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "30")
	offA := seedOffering(t, st, seller.ID, 10, "10.00")
	offB := seedOffering(t, st, seller.ID, 10, "5.00")

	addToCart(t, svc, buyer.ID, offA.ID, 2)
	addToCart(t, svc, buyer.ID, offB.ID, 1)

	orderID, err := svc.Checkout.Checkout(ctx, buyer.ID)
	require.NoError(t, err)

	requireDecimalEqual(t, "5.00", balanceOf(t, st, buyer.ID))
	requireDecimalEqual(t, "25.00", balanceOf(t, st, seller.ID))
	assert.Equal(t, 8, availableOf(t, st, offA.ID))
	assert.Equal(t, 9, availableOf(t, st, offB.ID))

	order, err := st.GetOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, order.Lines, 2)
	for _, l := range order.Lines {
		assert.Equal(t, models.FulfillmentPending, l.Status)
	}

	// Same cart with a poorer buyer fails clean.
	poor := seedUser(t, st, "poor@example.com", "20")
	addToCart(t, svc, poor.ID, offA.ID, 2)
	addToCart(t, svc, poor.ID, offB.ID, 1)
	_, err = svc.Checkout.Checkout(ctx, poor.ID)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	requireDecimalEqual(t, "20", balanceOf(t, st, poor.ID))
	assert.Equal(t, 8, availableOf(t, st, offA.ID))
}

func TestCheckoutMultipleSellers(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	sellerA := seedUser(t, st, "a@example.com", "0")
	sellerB := seedUser(t, st, "b@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "100")
	offA := seedOffering(t, st, sellerA.ID, 5, "10")
	offB := seedOffering(t, st, sellerB.ID, 5, "15")

	addToCart(t, svc, buyer.ID, offA.ID, 2)
	addToCart(t, svc, buyer.ID, offB.ID, 1)

	_, err := svc.Checkout.Checkout(ctx, buyer.ID)
	require.NoError(t, err)

	requireDecimalEqual(t, "65", balanceOf(t, st, buyer.ID))
	requireDecimalEqual(t, "20", balanceOf(t, st, sellerA.ID))
	requireDecimalEqual(t, "15", balanceOf(t, st, sellerB.ID))
}

func TestCheckoutSelfPurchaseConservesBalance(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	user := seedUser(t, st, "self@example.com", "50")
	off := seedOffering(t, st, user.ID, 5, "10")

	addToCart(t, svc, user.ID, off.ID, 2)

	_, err := svc.Checkout.Checkout(ctx, user.ID)
	require.NoError(t, err)

	// Credit and debit cancel out when buying from yourself.
	requireDecimalEqual(t, "50", balanceOf(t, st, user.ID))
	assert.Equal(t, 3, availableOf(t, st, off.ID))
}

func TestCheckoutLeavesSavedLinesAlone(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	buyer := seedUser(t, st, "buyer@example.com", "100")
	offA := seedOffering(t, st, seller.ID, 5, "10")
	offB := seedOffering(t, st, seller.ID, 5, "20")

	addToCart(t, svc, buyer.ID, offA.ID, 1)
	addToCart(t, svc, buyer.ID, offB.ID, 1)
	require.NoError(t, svc.Cart.SaveForLater(ctx, buyer.ID, offB.ID))

	orderID, err := svc.Checkout.Checkout(ctx, buyer.ID)
	require.NoError(t, err)

	order, err := st.GetOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, offA.ID, order.Lines[0].OfferingID)

	saved, err := svc.Cart.ListSaved(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, offB.ID, saved[0].OfferingID)
}

func TestConcurrentCheckoutsNeverOversell(t *testing.T) {
	svc, st := newTestRegistry()
	ctx := context.Background()

	seller := seedUser(t, st, "seller@example.com", "0")
	off := seedOffering(t, st, seller.ID, 1, "10")

	buyers := make([]uint, 4)
	for i := range buyers {
		u := seedUser(t, st, string(rune('a'+i))+"@example.com", "100")
		buyers[i] = u.ID
		addToCart(t, svc, u.ID, off.ID, 1)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(buyers))
	for i, id := range buyers {
		wg.Add(1)
		go func(i int, id uint) {
			defer wg.Done()
			_, errs[i] = svc.Checkout.Checkout(ctx, id)
		}(i, id)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, models.ErrInsufficientInventory)
		}
	}
	assert.Equal(t, 1, won, "exactly one buyer should get the last unit")
	assert.Equal(t, 0, availableOf(t, st, off.ID))
	requireDecimalEqual(t, "10", balanceOf(t, st, seller.ID))
}
