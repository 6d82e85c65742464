package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/matter-service/internal/domain"
)

// memoryTicketRepository keeps tickets in an ordered slice so that stable
// sorts observe insertion order for equal keys. All methods copy tickets on
// the way in and out; callers never share memory with the store.
type memoryTicketRepository struct {
	mu      sync.RWMutex
	tickets []domain.Ticket
}

// NewMemoryTicketRepository creates an empty in-memory ticket store.
func NewMemoryTicketRepository() TicketRepository {
	return &memoryTicketRepository{}
}

func (r *memoryTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		result = append(result, cloneTicket(t))
	}
	return result, nil
}

func (r *memoryTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tickets {
		if t.ID == id {
			clone := cloneTicket(t)
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryTicketRepository) Insert(ctx context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tickets = append(r.tickets, cloneTicket(*ticket))
	return nil
}

func (r *memoryTicketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tickets {
		if r.tickets[i].ID == ticket.ID {
			r.tickets[i] = cloneTicket(*ticket)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryTicketRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tickets {
		if r.tickets[i].ID == id {
			r.tickets = append(r.tickets[:i], r.tickets[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func cloneTicket(in domain.Ticket) domain.Ticket {
	out := in
	if in.AssigneeID != nil {
		v := *in.AssigneeID
		out.AssigneeID = &v
	}
	if in.DueDate != nil {
		v := *in.DueDate
		out.DueDate = &v
	}
	if in.UpdatedAt != nil {
		v := *in.UpdatedAt
		out.UpdatedAt = &v
	}
	return out
}
