package order

import (
	"context"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

// Repository persists completed orders. Orders are append-only.
type Repository interface {
	Place(ctx context.Context, o domain.Order) error
}
