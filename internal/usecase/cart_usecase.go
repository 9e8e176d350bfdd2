package usecase

import (
	"context"

	"munch/internal/domain/entity"
)

// CartOutput is a cart together with its computed total.
type CartOutput struct {
	Email string        `json:"email"`
	Items []entity.Dish `json:"items"`
	Total float64       `json:"total"`
}

// CartUsecase defines the cart accumulation operations.
type CartUsecase interface {
	// AddItem appends a catalogue dish to the user's cart, creating the
	// cart on first add. The dish must exist; the email is taken as-is.
	AddItem(ctx context.Context, email string, dishID int) (*CartOutput, error)

	// GetCart returns the user's cart; unknown users get an empty cart.
	GetCart(ctx context.Context, email string) (*CartOutput, error)
}
