package memory

import (
	"context"
	"sync"

	"munch/internal/domain/entity"
	"munch/internal/domain/repository"
)

// supportRepository implements repository.SupportRepository as an
// append-only slice of tickets.
type supportRepository struct {
	mu      sync.RWMutex
	tickets []entity.SupportTicket
}

// NewSupportRepository is the constructor for supportRepository.
func NewSupportRepository() repository.SupportRepository {
	return &supportRepository{}
}

// Create appends the ticket.
func (repo *supportRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.tickets = append(repo.tickets, *ticket)

	return nil
}

// List returns all tickets in submission order.
func (repo *supportRepository) List(ctx context.Context) ([]entity.SupportTicket, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	tickets := make([]entity.SupportTicket, len(repo.tickets))
	copy(tickets, repo.tickets)

	return tickets, nil
}
