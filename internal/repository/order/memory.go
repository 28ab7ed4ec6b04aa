package order

import (
	"context"
	"sync"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

type memoryRepo struct {
	mu     sync.Mutex
	orders []domain.Order
}

func NewMemory() Repository {
	return &memoryRepo{}
}

func (r *memoryRepo) Place(_ context.Context, o domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
	return nil
}
