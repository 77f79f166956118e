package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/service"
	"github.com/zaxiang/Mini-Amazon/store/memstore"
)

func newTestRegistry() (*service.Registry, *memstore.MemStore) {
	st := memstore.New()
	return service.NewRegistry(st, zap.NewNop()), st
}

func seedUser(t *testing.T, st *memstore.MemStore, email, balance string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Balance: decimal.RequireFromString(balance)}
	require.NoError(t, st.CreateUser(context.Background(), u))
	return u
}

func seedOffering(t *testing.T, st *memstore.MemStore, sellerID uint, quantity int, price string) *models.Offering {
	t.Helper()
	off := &models.Offering{
		SellerID:  sellerID,
		ProductID: 1,
		Quantity:  quantity,
		Price:     decimal.RequireFromString(price),
	}
	require.NoError(t, st.CreateOffering(context.Background(), off))
	return off
}

// addToCart puts n units of the offering in the buyer's active cart.
func addToCart(t *testing.T, svc *service.Registry, buyerID, offeringID uint, n int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, svc.Cart.AddToCart(ctx, buyerID, offeringID))
	if n > 1 {
		require.NoError(t, svc.Cart.SetQuantity(ctx, buyerID, offeringID, n))
	}
}

func balanceOf(t *testing.T, st *memstore.MemStore, userID uint) decimal.Decimal {
	t.Helper()
	u, err := st.GetUser(context.Background(), userID)
	require.NoError(t, err)
	return u.Balance
}

func availableOf(t *testing.T, st *memstore.MemStore, offeringID uint) int {
	t.Helper()
	off, err := st.GetOffering(context.Background(), offeringID)
	require.NoError(t, err)
	return off.Quantity
}

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got),
		"want %s, got %s", want, got.String())
}
