package memory

import (
	"context"
	"sync"

	"munch/internal/domain/entity"
	"munch/internal/domain/repository"
)

// ratingRepository implements repository.RatingRepository as an append-only
// slice with a store-assigned identifier.
type ratingRepository struct {
	mu      sync.RWMutex
	ratings []entity.Rating
	nextID  int
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository() repository.RatingRepository {
	return &ratingRepository{}
}

// Create assigns an identifier and appends the rating.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.nextID++
	rating.ID = repo.nextID
	repo.ratings = append(repo.ratings, *rating)

	return nil
}

// ListByDish returns all ratings for a dish in submission order.
func (repo *ratingRepository) ListByDish(ctx context.Context, dishID int) ([]entity.Rating, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	matched := make([]entity.Rating, 0)
	for _, rating := range repo.ratings {
		if rating.DishID == dishID {
			matched = append(matched, rating)
		}
	}

	return matched, nil
}
