package repository

import (
	"context"
	"errors"

	"munch/internal/domain/entity"
)

// ErrActivityNotFound is returned when no activity has been recorded for a user.
var ErrActivityNotFound = errors.New("activity not found")

// ActivityRepository tracks the last login timestamp per user email.
type ActivityRepository interface {
	// Upsert records a login event, replacing any previous timestamp.
	Upsert(ctx context.Context, email string, activity *entity.Activity) error

	// FindByEmail returns the last recorded activity for a user.
	FindByEmail(ctx context.Context, email string) (*entity.Activity, error)

	// Delete removes the activity record, if any. Used when a profile is
	// deleted so the tracker cannot report a ghost user.
	Delete(ctx context.Context, email string) error
}
