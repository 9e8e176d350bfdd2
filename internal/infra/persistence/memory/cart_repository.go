package memory

import (
	"context"
	"sync"

	"munch/internal/domain/entity"
	"munch/internal/domain/repository"
)

// cartRepository implements repository.CartRepository. Carts are keyed by
// normalized email; the stored Email field keeps the caller's casing from
// the first add.
type cartRepository struct {
	mu    sync.RWMutex
	carts map[string]*entity.Cart
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository() repository.CartRepository {
	return &cartRepository{
		carts: make(map[string]*entity.Cart),
	}
}

// Append adds a dish to the user's cart, creating the cart if absent.
func (repo *cartRepository) Append(ctx context.Context, email string, dish entity.Dish) (*entity.Cart, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := normalizeEmail(email)
	cart, ok := repo.carts[key]
	if !ok {
		cart = &entity.Cart{Email: email}
		repo.carts[key] = cart
	}

	cart.Items = append(cart.Items, dish)

	return copyCart(cart), nil
}

// Get returns a copy of the user's cart. Unknown users get an empty cart.
func (repo *cartRepository) Get(ctx context.Context, email string) (*entity.Cart, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	cart, ok := repo.carts[normalizeEmail(email)]
	if !ok {
		return &entity.Cart{Email: email, Items: []entity.Dish{}}, nil
	}

	return copyCart(cart), nil
}

// Drain snapshots and empties the cart under a single lock acquisition, so
// two concurrent checkouts of the same cart cannot both see its items.
func (repo *cartRepository) Drain(ctx context.Context, email string) ([]entity.Dish, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	cart, ok := repo.carts[normalizeEmail(email)]
	if !ok || len(cart.Items) == 0 {
		return []entity.Dish{}, nil
	}

	snapshot := make([]entity.Dish, len(cart.Items))
	copy(snapshot, cart.Items)

	// Cleared, not deleted: the cart object survives for future adds.
	cart.Items = cart.Items[:0]

	return snapshot, nil
}

func copyCart(cart *entity.Cart) *entity.Cart {
	items := make([]entity.Dish, len(cart.Items))
	copy(items, cart.Items)

	return &entity.Cart{Email: cart.Email, Items: items}
}
