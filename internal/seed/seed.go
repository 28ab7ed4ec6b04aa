package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

// Users returns the fixed identity directory: one customer without a
// credential, a manager and an admin. IDs and credentials are stable so
// compatibility tests can rely on them.
func Users() []domain.User {
	vasya := domain.User{
		ID:    "2e6db091-cbbc-4b78-98b0-1ec90cd7daae",
		Email: "vasya@example.com",
		Role:  domain.RoleCustomer,
	}
	ivan := domain.User{
		ID:    "0bc224c6-f78e-4de9-a3de-fe17451e6d0d",
		Email: "ivan@example.com",
		Role:  domain.RoleManager,
	}
	ivan.SetPassword("test")
	admin := domain.User{
		ID:    "c56013d7-f913-4b88-bc76-52bfe4a1791d",
		Email: "admin@example.com",
		Role:  domain.RoleAdmin,
	}
	admin.SetPassword("god")
	return []domain.User{vasya, ivan, admin}
}

// Products returns demo catalog entries for manual testing.
func Products() []domain.Product {
	now := time.Now().UTC()
	return []domain.Product{
		{
			ID:          "8f7f4f1a-8887-4c18-b15c-9e9b8c8f1a01",
			Name:        "Book",
			Description: "Hardcover demo book",
			PriceCents:  1000,
			CreatedAt:   now,
		},
		{
			ID:          "8f7f4f1a-8887-4c18-b15c-9e9b8c8f1a02",
			Name:        "Mug",
			Description: "Ceramic mug with store logo",
			PriceCents:  1299,
			CreatedAt:   now.Add(time.Millisecond),
		},
	}
}

// Apply inserts the fixture identities and demo products into postgres.
// It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, u := range Users() {
		if err := upsertUser(ctx, pool, u); err != nil {
			return fmt.Errorf("upsert user %s: %w", u.Email, err)
		}
	}
	for _, p := range Products() {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}
	return nil
}

func upsertUser(ctx context.Context, pool *pgxpool.Pool, u domain.User) error {
	const q = `
INSERT INTO users (id, email, role, salt, hash)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
ON CONFLICT (email) DO UPDATE
SET role = EXCLUDED.role,
    salt = EXCLUDED.salt,
    hash = EXCLUDED.hash
`
	_, err := pool.Exec(ctx, q, u.ID, u.Email, int(u.Role), u.Salt, u.Hash)
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p domain.Product) error {
	const q = `
INSERT INTO products (id, name, description, price_cents, created_at)
VALUES ($1, $2, NULLIF($3, ''), $4, $5)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents
`
	_, err := pool.Exec(ctx, q, p.ID, p.Name, p.Description, p.PriceCents, p.CreatedAt)
	return err
}
