package repository

import (
	"context"
	"errors"

	"munch/internal/domain/entity"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when registering an email that is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for the profile directory.
// Email lookups are case-insensitive; stored entities keep the casing used
// at registration. Iteration order is registration order.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. Returns ErrDuplicateEmail when the email
	// is already registered under any casing.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the store.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user from the directory.
	Delete(ctx context.Context, email string) error

	// List returns all users in registration order.
	List(ctx context.Context) ([]entity.User, error)
}
