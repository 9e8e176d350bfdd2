package memory

import (
	"context"
	"sync"

	"munch/internal/domain/entity"
	"munch/internal/domain/repository"
)

// userRepository implements repository.UserRepository. Users are keyed by
// normalized email; a separate slice preserves registration order so List
// and the directory summaries are deterministic.
type userRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User
	order []string
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[string]*entity.User),
	}
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.users[normalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return copyUser(user), nil
}

// Create persists a new user, rejecting duplicate emails under any casing.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, exists := repo.users[key]; exists {
		return repository.ErrDuplicateEmail
	}

	repo.users[key] = copyUser(user)
	repo.order = append(repo.order, key)

	return nil
}

// Update modifies an existing user entity in the store.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, exists := repo.users[key]; !exists {
		return repository.ErrUserNotFound
	}

	repo.users[key] = copyUser(user)

	return nil
}

// Delete removes the user from the directory.
func (repo *userRepository) Delete(ctx context.Context, email string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := normalizeEmail(email)
	if _, exists := repo.users[key]; !exists {
		return repository.ErrUserNotFound
	}

	delete(repo.users, key)
	for i, k := range repo.order {
		if k == key {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)

			break
		}
	}

	return nil
}

// List returns all users in registration order.
func (repo *userRepository) List(ctx context.Context) ([]entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	users := make([]entity.User, 0, len(repo.order))
	for _, key := range repo.order {
		if user, ok := repo.users[key]; ok {
			users = append(users, *copyUser(user))
		}
	}

	return users, nil
}

func copyUser(user *entity.User) *entity.User {
	copied := *user

	return &copied
}
