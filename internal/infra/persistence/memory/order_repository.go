package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"munch/internal/domain/entity"
	"munch/internal/domain/repository"
)

// orderRepository implements repository.OrderRepository. The identifier
// counter shares the write lock with insertion, so concurrent checkouts can
// never observe the same next id.
type orderRepository struct {
	mu     sync.RWMutex
	orders []*entity.Order
	nextID int
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository() repository.OrderRepository {
	return &orderRepository{}
}

// Create assigns the next identifier and appends the order with status In Process.
func (repo *orderRepository) Create(ctx context.Context, email string, items []entity.Dish, deliveryTime time.Time) (*entity.Order, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.nextID++
	order := &entity.Order{
		ID:           repo.nextID,
		Email:        email,
		Items:        items,
		Status:       entity.OrderStatusInProcess,
		DeliveryTime: deliveryTime,
		CreatedAt:    time.Now(),
	}
	repo.orders = append(repo.orders, order)

	return copyOrder(order), nil
}

// FindByID retrieves a single order by its identifier.
func (repo *orderRepository) FindByID(ctx context.Context, id int) (*entity.Order, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	order := repo.findLocked(id)
	if order == nil {
		return nil, repository.ErrOrderNotFound
	}

	return copyOrder(order), nil
}

// ListByEmail returns the user's orders in creation order.
func (repo *orderRepository) ListByEmail(ctx context.Context, email string) ([]entity.Order, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	matched := make([]entity.Order, 0)
	for _, order := range repo.orders {
		if strings.EqualFold(order.Email, email) {
			matched = append(matched, *copyOrder(order))
		}
	}

	return matched, nil
}

// Transition moves an order to a terminal status, enforcing the state machine.
func (repo *orderRepository) Transition(ctx context.Context, id int, next entity.OrderStatus) (*entity.Order, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	order := repo.findLocked(id)
	if order == nil {
		return nil, repository.ErrOrderNotFound
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, repository.ErrOrderFinalized
	}

	order.Status = next

	return copyOrder(order), nil
}

// Summary counts all orders by status.
func (repo *orderRepository) Summary(ctx context.Context) (*repository.OrderSummary, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	summary := &repository.OrderSummary{Total: len(repo.orders)}
	for _, order := range repo.orders {
		switch order.Status {
		case entity.OrderStatusDelivered:
			summary.Delivered++
		case entity.OrderStatusCancelled:
			summary.Cancelled++
		case entity.OrderStatusInProcess:
			summary.InProcess++
		}
	}

	return summary, nil
}

func (repo *orderRepository) findLocked(id int) *entity.Order {
	for _, order := range repo.orders {
		if order.ID == id {
			return order
		}
	}

	return nil
}

func copyOrder(order *entity.Order) *entity.Order {
	items := make([]entity.Dish, len(order.Items))
	copy(items, order.Items)

	copied := *order
	copied.Items = items

	return &copied
}
