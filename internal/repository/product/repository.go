package product

import (
	"context"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

// UpdateInput carries the mutable product fields. A nil field keeps the
// stored value.
type UpdateInput struct {
	Name        *string
	Description *string
	PriceCents  *int64
}

type Repository interface {
	// List returns every product in insertion order.
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error)
}
