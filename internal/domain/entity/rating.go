package entity

import "time"

// Rating is a user-submitted score for a dish. Submitted ratings are stored
// alongside the seeded editorial rating; they never overwrite the catalogue.
type Rating struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`  // Submitting user.
	DishID    int       `json:"dishId"` // Rated dish.
	Score     int       `json:"score"`  // 1..5.
	CreatedAt time.Time `json:"createdAt"`
}
