package repository

import (
	"context"

	"munch/internal/domain/entity"
)

// CartRepository defines the operations on per-user carts. A cart is owned
// exclusively by the store; callers only ever see copies of its items.
type CartRepository interface {
	// Append adds a dish to the user's cart, creating the cart if absent.
	// Duplicates are allowed.
	Append(ctx context.Context, email string, dish entity.Dish) (*entity.Cart, error)

	// Get returns the user's cart. An unknown user yields an empty cart,
	// never an error.
	Get(ctx context.Context, email string) (*entity.Cart, error)

	// Drain atomically snapshots the cart's items and empties the cart in
	// place. It returns the snapshot; an absent or empty cart yields an
	// empty slice. Invoked by the order engine on checkout.
	Drain(ctx context.Context, email string) ([]entity.Dish, error)
}
