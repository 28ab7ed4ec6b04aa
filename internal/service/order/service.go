package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

// Service turns carts into orders.
type Service struct {
	carts    cartStore
	products productStore
	orders   orderRepo
}

type cartStore interface {
	LockEmail(email string) func()
	Get(ctx context.Context, email string) (*domain.Cart, error)
	Clear(ctx context.Context, email string) error
}

type productStore interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type orderRepo interface {
	Place(ctx context.Context, o domain.Order) error
}

func New(carts cartStore, products productStore, orders orderRepo) *Service {
	return &Service{carts: carts, products: products, orders: orders}
}

// Checkout consumes the cart for email. Prices are read at checkout
// time, so a catalog edit between add and checkout is reflected in the
// total. The cart is cleared only after the order is placed; every
// failure path leaves it untouched.
func (s *Service) Checkout(ctx context.Context, email string) (*domain.Order, error) {
	unlock := s.carts.LockEmail(email)
	defer unlock()

	cart, err := s.carts.Get(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	if len(cart.ItemIDs) == 0 {
		return nil, domain.ErrEmptyCart
	}

	items := make([]domain.Product, 0, len(cart.ItemIDs))
	var total int64
	for _, id := range cart.ItemIDs {
		p, err := s.products.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
		total += p.PriceCents
	}

	o := domain.Order{
		ID:         uuid.NewString(),
		Email:      email,
		Items:      items,
		TotalCents: total,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.orders.Place(ctx, o); err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	if err := s.carts.Clear(ctx, email); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	return &o, nil
}
