package repository

import (
	"context"
	"errors"
	"time"

	"munch/internal/domain/entity"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderFinalized is returned when a status transition is attempted
	// on an order that has already left the In Process state.
	ErrOrderFinalized = errors.New("order already finalized")
)

// OrderSummary aggregates order counts by status.
type OrderSummary struct {
	Total     int `json:"total"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
	InProcess int `json:"inProcess"`
}

// OrderRepository defines the operations on the order list. Order
// identifiers are assigned by the store itself, under the same lock as
// insertion, so concurrent checkouts can never produce a duplicate id.
type OrderRepository interface {
	// Create assigns the next identifier, stamps the initial status and
	// appends the order. The items slice is stored as-is; the caller must
	// hand over a snapshot it no longer mutates.
	Create(ctx context.Context, email string, items []entity.Dish, deliveryTime time.Time) (*entity.Order, error)

	// FindByID retrieves a single order by its identifier.
	FindByID(ctx context.Context, id int) (*entity.Order, error)

	// ListByEmail returns the user's orders in creation order.
	ListByEmail(ctx context.Context, email string) ([]entity.Order, error)

	// Transition moves an order to the given terminal status. It returns
	// ErrOrderNotFound for unknown ids and ErrOrderFinalized when the order
	// has already left In Process.
	Transition(ctx context.Context, id int, next entity.OrderStatus) (*entity.Order, error)

	// Summary counts all orders by status.
	Summary(ctx context.Context) (*OrderSummary, error)
}
