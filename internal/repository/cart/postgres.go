package cart

import (
	"context"

	"github.com/b4tman/stepik-storeapi/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context, email string) (*domain.Cart, error) {
	return r.fetch(ctx, email)
}

func (r *postgresRepo) AddItem(ctx context.Context, email, productID string) (*domain.Cart, error) {
	const q = `
INSERT INTO cart_items (email, product_id)
VALUES ($1, $2)
ON CONFLICT (email, product_id) DO NOTHING
`
	if _, err := r.pool.Exec(ctx, q, email, productID); err != nil {
		return nil, err
	}
	return r.fetch(ctx, email)
}

func (r *postgresRepo) RemoveItem(ctx context.Context, email, productID string) (*domain.Cart, error) {
	const q = `
DELETE FROM cart_items
WHERE email = $1 AND product_id = $2
`
	if _, err := r.pool.Exec(ctx, q, email, productID); err != nil {
		return nil, err
	}
	return r.fetch(ctx, email)
}

func (r *postgresRepo) Clear(ctx context.Context, email string) error {
	const q = `
DELETE FROM cart_items
WHERE email = $1
`
	_, err := r.pool.Exec(ctx, q, email)
	return err
}

func (r *postgresRepo) fetch(ctx context.Context, email string) (*domain.Cart, error) {
	const q = `
SELECT product_id::text
FROM cart_items
WHERE email = $1
ORDER BY added_at ASC, product_id
`
	rows, err := r.pool.Query(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart := &domain.Cart{Email: email, ItemIDs: []string{}}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		cart.ItemIDs = append(cart.ItemIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cart, nil
}
