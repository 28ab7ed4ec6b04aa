package cart

import (
	"context"
	"sync"

	"github.com/b4tman/stepik-storeapi/internal/domain"
	cartrepo "github.com/b4tman/stepik-storeapi/internal/repository/cart"
)

// Service owns per-email carts. Mutations for one email are serialized
// through a keyed mutex; carts for different emails never contend.
type Service struct {
	repo     cartRepo
	products productRepo

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

type cartRepo interface {
	Get(ctx context.Context, email string) (*domain.Cart, error)
	AddItem(ctx context.Context, email, productID string) (*domain.Cart, error)
	RemoveItem(ctx context.Context, email, productID string) (*domain.Cart, error)
	Clear(ctx context.Context, email string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productRepo) *Service {
	return &Service{
		repo:     repo,
		products: products,
		locks:    make(map[string]*sync.Mutex),
	}
}

// LockEmail acquires the mutation lock for one email and returns its
// release func. Checkout holds it across the snapshot-and-clear sequence
// so a concurrent add cannot slip in between.
func (s *Service) LockEmail(email string) func() {
	s.mu.Lock()
	l, ok := s.locks[email]
	if !ok {
		l = &sync.Mutex{}
		s.locks[email] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Get returns the current cart snapshot. Unknown emails get an empty cart.
func (s *Service) Get(ctx context.Context, email string) (*domain.Cart, error) {
	return s.repo.Get(ctx, email)
}

// Add puts a product into the cart. The product must exist in the
// catalog; adding an already-present id is a no-op.
func (s *Service) Add(ctx context.Context, email, productID string) (*domain.Cart, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	unlock := s.LockEmail(email)
	defer unlock()
	return s.repo.AddItem(ctx, email, productID)
}

// Remove takes a product out of the cart. Removing an absent id is a
// no-op, not an error.
func (s *Service) Remove(ctx context.Context, email, productID string) (*domain.Cart, error) {
	unlock := s.LockEmail(email)
	defer unlock()
	return s.repo.RemoveItem(ctx, email, productID)
}

// Clear empties the cart. The caller is expected to hold the email lock;
// checkout is the only caller.
func (s *Service) Clear(ctx context.Context, email string) error {
	return s.repo.Clear(ctx, email)
}
