package product

import (
	"context"
	"sync"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

// memoryRepo keeps products in a slice to preserve insertion order.
// A single mutex serializes all catalog mutations.
type memoryRepo struct {
	mu    sync.RWMutex
	items []domain.Product
	index map[string]int
}

func NewMemory() Repository {
	return &memoryRepo{index: make(map[string]int)}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := r.items[i]
	return &out, nil
}

func (r *memoryRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index[p.ID] = len(r.items)
	r.items = append(r.items, p)
	out := p
	return &out, nil
}

func (r *memoryRepo) Update(_ context.Context, id string, in UpdateInput) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.items[i]
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.PriceCents != nil {
		p.PriceCents = *in.PriceCents
	}
	r.items[i] = p
	out := p
	return &out, nil
}
