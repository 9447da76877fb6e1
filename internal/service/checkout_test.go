package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onlinemarket/shop/internal/models"
	"github.com/onlinemarket/shop/internal/service"
	"github.com/onlinemarket/shop/internal/transport"
)

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProduct(t, 50)

	_, err := env.Cart.AddItems(ctx, 1, []transport.CartItemRequest{{ProductID: p.ID, Quantity: 10}})
	require.NoError(t, err)

	order, err := env.Checkout.Checkout(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, order)
	require.Equal(t, models.OrderStatusRegistered, order.Status)
	require.Equal(t, uint(1), order.UserID)
	require.GreaterOrEqual(t, order.TrackID, int64(10_000_000_000))
	require.Less(t, order.TrackID, int64(100_000_000_000))

	require.Empty(t, env.cartItems(t, 1))

	var count int64
	require.NoError(t, env.DB.Model(&models.Order{}).Where("user_id = ?", 1).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestCheckoutEmptyCartCreatesNoOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	order, err := env.Checkout.Checkout(ctx, 1)
	require.NoError(t, err)
	require.Nil(t, order)

	var count int64
	require.NoError(t, env.DB.Model(&models.Order{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCheckoutDoesNotTouchOtherCarts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProduct(t, 50)

	_, err := env.Cart.AddItems(ctx, 1, []transport.CartItemRequest{{ProductID: p.ID, Quantity: 1}})
	require.NoError(t, err)
	_, err = env.Cart.AddItems(ctx, 2, []transport.CartItemRequest{{ProductID: p.ID, Quantity: 2}})
	require.NoError(t, err)

	order, err := env.Checkout.Checkout(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, order)

	require.Empty(t, env.cartItems(t, 1))
	require.Len(t, env.cartItems(t, 2), 1)
}

func TestNewTrackIDRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := service.NewTrackID()
		require.GreaterOrEqual(t, id, int64(10_000_000_000))
		require.Less(t, id, int64(100_000_000_000))
	}
}
