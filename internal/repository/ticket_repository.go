package repository

import (
	"context"
	"errors"

	"github.com/spec-kit/matter-service/internal/domain"
)

// ErrNotFound is returned when a record id does not exist in the store.
var ErrNotFound = errors.New("record not found")

// TicketRepository encapsulates ticket storage. List returns the full
// collection in creation order; filtering and sorting happen in the query
// pipeline, not in the store.
type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	Insert(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	Remove(ctx context.Context, id string) error
}

// UserRepository encapsulates user storage.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
}
