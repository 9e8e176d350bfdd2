package usecase

import (
	"context"
	"time"

	"munch/internal/domain/entity"
	"munch/internal/domain/repository"
)

// CheckoutInput defines the data required to convert a cart into an order.
// DeliveryTime is optional; when nil the engine picks the default slot.
type CheckoutInput struct {
	Email        string
	DeliveryTime *time.Time
}

// OrderUsecase defines the order engine operations.
type OrderUsecase interface {
	// Checkout converts the user's cart into a new order and empties the
	// cart. Fails when the cart is absent or empty, or when the requested
	// delivery time does not leave enough lead.
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)

	// ListForUser returns the user's orders in creation order.
	ListForUser(ctx context.Context, email string) ([]entity.Order, error)

	// Confirm transitions an order from In Process to Delivered.
	Confirm(ctx context.Context, orderID int) (*entity.Order, error)

	// Cancel transitions an order from In Process to Cancelled. The status
	// exists in the lifecycle but no HTTP route reaches it; the operation
	// is available to internal callers and fully tested.
	Cancel(ctx context.Context, orderID int) (*entity.Order, error)

	// Summary counts all orders by status.
	Summary(ctx context.Context) (*repository.OrderSummary, error)
}
