package cart

import (
	"context"
	"sync"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

type memoryRepo struct {
	mu    sync.RWMutex
	carts map[string][]string
}

func NewMemory() Repository {
	return &memoryRepo{carts: make(map[string][]string)}
}

func (r *memoryRepo) Get(_ context.Context, email string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(email), nil
}

func (r *memoryRepo) AddItem(_ context.Context, email, productID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.carts[email]
	present := false
	for _, id := range ids {
		if id == productID {
			present = true
			break
		}
	}
	if !present {
		r.carts[email] = append(ids, productID)
	}
	return r.snapshot(email), nil
}

func (r *memoryRepo) RemoveItem(_ context.Context, email, productID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.carts[email]
	for i, id := range ids {
		if id == productID {
			r.carts[email] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return r.snapshot(email), nil
}

func (r *memoryRepo) Clear(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, email)
	return nil
}

// snapshot copies the current item ids; callers hold at least a read lock.
func (r *memoryRepo) snapshot(email string) *domain.Cart {
	ids := r.carts[email]
	out := make([]string, len(ids))
	copy(out, ids)
	return &domain.Cart{Email: email, ItemIDs: out}
}
