package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/b4tman/stepik-storeapi/internal/domain"
	cartrepo "github.com/b4tman/stepik-storeapi/internal/repository/cart"
)

type stubProductRepo struct {
	products map[string]domain.Product
	calls    int
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	s.calls++
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := p
	return &out, nil
}

func newService(products map[string]domain.Product) (*Service, cartrepo.Repository) {
	repo := cartrepo.NewMemory()
	return New(repo, &stubProductRepo{products: products}), repo
}

func TestAddValidatesProductExists(t *testing.T) {
	svc, repo := newService(nil)

	_, err := svc.Add(context.Background(), "a@example.com", "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	cart, _ := repo.Get(context.Background(), "a@example.com")
	if len(cart.ItemIDs) != 0 {
		t.Fatalf("expected cart untouched, got %v", cart.ItemIDs)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	svc, _ := newService(map[string]domain.Product{"p1": {ID: "p1", Name: "Book", PriceCents: 1000}})
	ctx := context.Background()

	if _, err := svc.Add(ctx, "a@example.com", "p1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.Add(ctx, "a@example.com", "p1")
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if len(cart.ItemIDs) != 1 {
		t.Fatalf("expected one item, got %v", cart.ItemIDs)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	svc, _ := newService(map[string]domain.Product{"p1": {ID: "p1", PriceCents: 100}})
	ctx := context.Background()

	if _, err := svc.Add(ctx, "a@example.com", "p1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.Remove(ctx, "a@example.com", "other")
	if err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if len(cart.ItemIDs) != 1 || cart.ItemIDs[0] != "p1" {
		t.Fatalf("expected cart unchanged, got %v", cart.ItemIDs)
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	svc, _ := newService(map[string]domain.Product{"p1": {ID: "p1"}, "p2": {ID: "p2"}})
	ctx := context.Background()

	before, _ := svc.Get(ctx, "a@example.com")
	if _, err := svc.Add(ctx, "a@example.com", "p2"); err != nil {
		t.Fatalf("add: %v", err)
	}
	after, err := svc.Remove(ctx, "a@example.com", "p2")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(after.ItemIDs) != len(before.ItemIDs) {
		t.Fatalf("expected round trip to restore cart, got %v", after.ItemIDs)
	}
}

func TestConcurrentAddsSameEmail(t *testing.T) {
	svc, _ := newService(map[string]domain.Product{
		"p1": {ID: "p1"}, "p2": {ID: "p2"}, "p3": {ID: "p3"}, "p4": {ID: "p4"},
	})
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := svc.Add(ctx, "a@example.com", id); err != nil {
				t.Errorf("add %s: %v", id, err)
			}
		}(id)
	}
	wg.Wait()

	cart, _ := svc.Get(ctx, "a@example.com")
	if len(cart.ItemIDs) != 4 {
		t.Fatalf("expected all 4 adds to land, got %v", cart.ItemIDs)
	}
}

func TestLockEmailBlocksSameEmailOnly(t *testing.T) {
	svc, _ := newService(nil)

	unlock := svc.LockEmail("a@example.com")

	// A different email must not contend.
	done := make(chan struct{})
	go func() {
		u := svc.LockEmail("b@example.com")
		u()
		close(done)
	}()
	<-done

	unlock()

	// Same email is usable again after release.
	u := svc.LockEmail("a@example.com")
	u()
}
