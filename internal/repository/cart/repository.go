package cart

import (
	"context"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

// Repository stores per-email carts. Get never fails for an unknown
// email: carts exist lazily and an untouched one is simply empty.
// AddItem and RemoveItem are idempotent.
type Repository interface {
	Get(ctx context.Context, email string) (*domain.Cart, error)
	AddItem(ctx context.Context, email, productID string) (*domain.Cart, error)
	RemoveItem(ctx context.Context, email, productID string) (*domain.Cart, error)
	Clear(ctx context.Context, email string) error
}
