package impl

import (
	"context"
	"testing"
	"time"

	"munch/internal/domain/entity"
	domainerrors "munch/internal/domain/errors"
	"munch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillCart(t *testing.T, fx serviceFixtures, email string, dishIDs ...int) {
	t.Helper()

	for _, id := range dishIDs {
		_, err := fx.cart.AddItem(context.Background(), email, id)
		require.NoError(t, err)
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	fillCart(t, fx, "alice@example.com", 1, 4)

	order, err := fx.order.Checkout(ctx, &usecase.CheckoutInput{Email: "alice@example.com"})

	require.NoError(t, err)
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, entity.OrderStatusInProcess, order.Status)
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 26.98, order.Total(), 0.001)

	// The default slot is in the future.
	assert.True(t, order.DeliveryTime.After(time.Now()))

	// The cart is empty after checkout.
	cart, err := fx.cart.GetCart(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createServiceFixtures(t)

	_, err := fx.order.Checkout(context.Background(), &usecase.CheckoutInput{Email: "alice@example.com"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_Checkout_RequestedDeliveryTime(t *testing.T) {
	fx := createServiceFixtures(t)
	fillCart(t, fx, "alice@example.com", 1)

	requested := time.Now().Add(2 * time.Hour)
	order, err := fx.order.Checkout(context.Background(), &usecase.CheckoutInput{
		Email:        "alice@example.com",
		DeliveryTime: &requested,
	})

	require.NoError(t, err)
	assert.Equal(t, requested, order.DeliveryTime)
}

func TestOrderService_Checkout_RejectedSlotLeavesCartIntact(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	fillCart(t, fx, "alice@example.com", 1, 3)

	tooSoon := time.Now().Add(10 * time.Minute)
	_, err := fx.order.Checkout(ctx, &usecase.CheckoutInput{
		Email:        "alice@example.com",
		DeliveryTime: &tooSoon,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	// The rejection happened before the drain; nothing was lost.
	cart, err := fx.cart.GetCart(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestOrderService_ListForUser(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()

	fillCart(t, fx, "alice@example.com", 1)
	_, err := fx.order.Checkout(ctx, &usecase.CheckoutInput{Email: "alice@example.com"})
	require.NoError(t, err)

	fillCart(t, fx, "alice@example.com", 4)
	_, err = fx.order.Checkout(ctx, &usecase.CheckoutInput{Email: "alice@example.com"})
	require.NoError(t, err)

	fillCart(t, fx, "bob@example.com", 2)
	_, err = fx.order.Checkout(ctx, &usecase.CheckoutInput{Email: "bob@example.com"})
	require.NoError(t, err)

	orders, err := fx.order.ListForUser(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 1, orders[0].ID)
	assert.Equal(t, 2, orders[1].ID)

	// A user with no history gets an empty list, not an error.
	orders, err = fx.order.ListForUser(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_ConfirmAndRepeat(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	fillCart(t, fx, "alice@example.com", 1)

	order, err := fx.order.Checkout(ctx, &usecase.CheckoutInput{Email: "alice@example.com"})
	require.NoError(t, err)

	confirmed, err := fx.order.Confirm(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, confirmed.Status)

	// Confirming again conflicts instead of silently succeeding.
	_, err = fx.order.Confirm(ctx, order.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderAlreadyFinalized))
}

func TestOrderService_Confirm_UnknownOrder(t *testing.T) {
	fx := createServiceFixtures(t)

	_, err := fx.order.Confirm(context.Background(), 999)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_Cancel(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()
	fillCart(t, fx, "alice@example.com", 1)

	order, err := fx.order.Checkout(ctx, &usecase.CheckoutInput{Email: "alice@example.com"})
	require.NoError(t, err)

	cancelled, err := fx.order.Cancel(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)

	// A cancelled order cannot be delivered afterwards.
	_, err = fx.order.Confirm(ctx, order.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderAlreadyFinalized))
}

func TestOrderService_Summary(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()

	checkout := func(email string, dishID int) *entity.Order {
		fillCart(t, fx, email, dishID)
		order, err := fx.order.Checkout(ctx, &usecase.CheckoutInput{Email: email})
		require.NoError(t, err)

		return order
	}

	first := checkout("alice@example.com", 1)
	second := checkout("bob@example.com", 2)
	checkout("carol@example.com", 3)

	_, err := fx.order.Confirm(ctx, first.ID)
	require.NoError(t, err)
	_, err = fx.order.Cancel(ctx, second.ID)
	require.NoError(t, err)

	summary, err := fx.order.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Delivered)
	assert.Equal(t, 1, summary.Cancelled)
	assert.Equal(t, 1, summary.InProcess)
}
