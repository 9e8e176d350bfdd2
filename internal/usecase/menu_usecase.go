package usecase

import (
	"context"

	"munch/internal/domain/entity"
)

// ListMenuInput carries the raw query parameters of a menu listing.
type ListMenuInput struct {
	Search   string
	Category string
	SortBy   string
}

// RateDishInput defines the data required to rate a dish.
type RateDishInput struct {
	Email  string
	DishID int
	Score  int
}

// MenuUsecase defines the read views over the catalogue and the
// user-submitted dish ratings.
type MenuUsecase interface {
	// List returns the filtered, sorted catalogue.
	List(ctx context.Context, input *ListMenuInput) ([]entity.Dish, error)

	// GetDish retrieves a single dish by id.
	GetDish(ctx context.Context, id int) (*entity.Dish, error)

	// Vegetarian returns the vegetarian subset in catalogue order.
	Vegetarian(ctx context.Context) ([]entity.Dish, error)

	// TopRated returns the three highest-rated dishes, descending.
	TopRated(ctx context.Context) ([]entity.Dish, error)

	// RateDish records a rating; both the user and the dish must exist.
	RateDish(ctx context.Context, input *RateDishInput) (*entity.Rating, error)

	// ListRatings returns all submitted ratings for a dish.
	ListRatings(ctx context.Context, dishID int) ([]entity.Rating, error)
}
