package user

import (
	"context"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

// memoryRepo is a fixed directory populated at construction time.
// It is never mutated afterwards, so reads need no locking.
type memoryRepo struct {
	byEmail map[string]domain.User
}

// NewMemory builds an in-memory directory from a fixed set of users.
func NewMemory(users []domain.User) Repository {
	byEmail := make(map[string]domain.User, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}
	return &memoryRepo{byEmail: byEmail}
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := u
	return &out, nil
}
