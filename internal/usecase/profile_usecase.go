package usecase

import (
	"context"
	"time"

	"munch/internal/domain/entity"
)

// UpdateProfileInput defines the mutable profile fields. Email and password
// are not touched by profile updates.
type UpdateProfileInput struct {
	Name      string
	Address   string
	Phone     string
	BirthDate time.Time
}

// ProfileSummary aggregates directory statistics. The name fields hold the
// "N/A" sentinel when the directory is empty.
type ProfileSummary struct {
	TotalUsers       int     `json:"totalUsers"`
	OldestUserName   string  `json:"oldestUserName"`
	YoungestUserName string  `json:"youngestUserName"`
	AverageAge       float64 `json:"averageAge"`
}

// ActivityOutput reports a user's last recorded login.
type ActivityOutput struct {
	LastLogin time.Time `json:"lastLogin"`
	Status    string    `json:"status"`
}

// ProfileUsecase defines profile directory operations and the activity tracker.
type ProfileUsecase interface {
	// Get retrieves a profile by email.
	Get(ctx context.Context, email string) (*entity.User, error)

	// Update replaces name, address, phone and birth date.
	Update(ctx context.Context, email string, input *UpdateProfileInput) (*entity.User, error)

	// Delete removes the profile and its activity record.
	Delete(ctx context.Context, email string) error

	// Summary computes the directory statistics on demand.
	Summary(ctx context.Context) (*ProfileSummary, error)

	// RecordLogin upserts the last-seen timestamp for a known user.
	RecordLogin(ctx context.Context, email string) error

	// GetActivity reads the last recorded login for a known user.
	GetActivity(ctx context.Context, email string) (*ActivityOutput, error)
}
