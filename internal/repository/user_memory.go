package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/spec-kit/matter-service/internal/domain"
)

type memoryUserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewMemoryUserRepository creates an empty in-memory user store.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{}
}

func (r *memoryUserRepository) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, cloneUser(u))
	}
	return result, nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			clone := cloneUser(u)
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

// GetByEmail matches case-insensitively, like the login form does.
func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			clone := cloneUser(u)
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) Insert(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, cloneUser(*user))
	return nil
}

func cloneUser(in domain.User) domain.User {
	out := in
	if in.Avatar != nil {
		v := *in.Avatar
		out.Avatar = &v
	}
	return out
}
