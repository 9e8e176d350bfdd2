// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Dish is a purchasable item in the catalogue. The catalogue is seeded once
// at startup and never mutated afterwards, so Dish values can be shared
// freely between carts and order snapshots.
type Dish struct {
	ID         int     `json:"id"`         // Stable, unique catalogue identifier.
	Name       string  `json:"name"`       // Display name of the dish.
	Price      float64 `json:"price"`      // Price in the shop's single currency.
	Category   string  `json:"category"`   // Cuisine or menu section, e.g. "Italian".
	Vegetarian bool    `json:"vegetarian"` // Whether the dish is vegetarian.
	Rating     float64 `json:"rating"`     // Seeded editorial rating, 0..5.
}
