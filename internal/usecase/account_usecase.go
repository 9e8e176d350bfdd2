// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"munch/internal/domain/entity"
)

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Address   string
	Phone     string
	BirthDate time.Time
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput returns the session token after registration or login.
type AuthOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// AccountUsecase defines registration, login and the demo token flow.
// This is the contract the delivery layer depends on.
type AccountUsecase interface {
	// Register stores a new user and returns a session token. Fails when
	// the email is already registered.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login checks the credentials and returns a session token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Resolve extracts the email from a session token. Fails on malformed
	// tokens; issued-ness and expiry are not checked, by the token's design.
	Resolve(ctx context.Context, token string) (string, error)

	// Logout acknowledges a logout. The token scheme is stateless, so no
	// server-side session is revoked; a malformed token still fails.
	Logout(ctx context.Context, token string) error
}
