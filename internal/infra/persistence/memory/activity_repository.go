package memory

import (
	"context"
	"sync"

	"munch/internal/domain/entity"
	"munch/internal/domain/repository"
)

// activityRepository implements repository.ActivityRepository as an
// upsert-only map from normalized email to the last login event.
type activityRepository struct {
	mu         sync.RWMutex
	activities map[string]entity.Activity
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository() repository.ActivityRepository {
	return &activityRepository{
		activities: make(map[string]entity.Activity),
	}
}

// Upsert records a login event, replacing any previous timestamp.
func (repo *activityRepository) Upsert(ctx context.Context, email string, activity *entity.Activity) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.activities[normalizeEmail(email)] = *activity

	return nil
}

// FindByEmail returns the last recorded activity for a user.
func (repo *activityRepository) FindByEmail(ctx context.Context, email string) (*entity.Activity, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	activity, ok := repo.activities[normalizeEmail(email)]
	if !ok {
		return nil, repository.ErrActivityNotFound
	}

	return &activity, nil
}

// Delete removes the activity record, if any.
func (repo *activityRepository) Delete(ctx context.Context, email string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.activities, normalizeEmail(email))

	return nil
}
