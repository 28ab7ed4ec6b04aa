package user

import (
	"context"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

// Repository is the read-only identity directory.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
