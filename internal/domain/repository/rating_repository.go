package repository

import (
	"context"

	"munch/internal/domain/entity"
)

// RatingRepository stores user-submitted dish ratings. Ratings are append
// only; the seeded catalogue rating is never touched.
type RatingRepository interface {
	// Create assigns an identifier and appends the rating.
	Create(ctx context.Context, rating *entity.Rating) error

	// ListByDish returns all ratings for a dish in submission order.
	ListByDish(ctx context.Context, dishID int) ([]entity.Rating, error)
}
