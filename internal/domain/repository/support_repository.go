package repository

import (
	"context"

	"munch/internal/domain/entity"
)

// SupportRepository stores submitted support tickets.
type SupportRepository interface {
	// Create appends the ticket.
	Create(ctx context.Context, ticket *entity.SupportTicket) error

	// List returns all tickets in submission order.
	List(ctx context.Context) ([]entity.SupportTicket, error)
}
