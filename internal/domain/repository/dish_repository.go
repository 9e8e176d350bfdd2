// Package repository defines the interfaces for the store layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"munch/internal/domain/entity"
)

// ErrDishNotFound is a domain-specific error returned when a dish is not found.
var ErrDishNotFound = errors.New("dish not found")

// MenuFilter narrows the catalogue listing. Zero values mean "no filtering".
type MenuFilter struct {
	// Search matches case-insensitively against name or category substring.
	Search string
	// Category matches the category exactly, case-insensitively.
	Category string
}

// MenuSort selects the ordering of a catalogue listing.
type MenuSort string

// Recognized sort keys. Any other value leaves the catalogue order unchanged.
const (
	MenuSortNone       MenuSort = ""
	MenuSortNameAsc    MenuSort = "name_asc"
	MenuSortNameDesc   MenuSort = "name_desc"
	MenuSortPriceAsc   MenuSort = "price_asc"
	MenuSortPriceDesc  MenuSort = "price_desc"
	MenuSortRatingAsc  MenuSort = "rating_asc"
	MenuSortRatingDesc MenuSort = "rating_desc"
)

// DishRepository defines read access to the immutable dish catalogue.
// The catalogue is seeded once at startup; there are no write operations.
type DishRepository interface {
	// List returns the dishes matching the filter, ordered by the sort key.
	// Sorting is stable so ties keep catalogue order.
	List(ctx context.Context, filter MenuFilter, sort MenuSort) ([]entity.Dish, error)

	// FindByID retrieves a single dish by its catalogue identifier.
	FindByID(ctx context.Context, id int) (*entity.Dish, error)

	// Vegetarian returns the vegetarian subset in catalogue order.
	Vegetarian(ctx context.Context) ([]entity.Dish, error)

	// TopRated returns the n highest-rated dishes in descending rating
	// order, ties broken by catalogue order.
	TopRated(ctx context.Context, n int) ([]entity.Dish, error)
}
