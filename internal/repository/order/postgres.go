package order

import (
	"context"

	"github.com/b4tman/stepik-storeapi/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Place(ctx context.Context, o domain.Order) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const orderQ = `
INSERT INTO orders (id, email, total_cents, created_at)
VALUES ($1, $2, $3, $4)
`
	if _, err := tx.Exec(ctx, orderQ, o.ID, o.Email, o.TotalCents, o.CreatedAt); err != nil {
		return err
	}

	const itemQ = `
INSERT INTO order_items (order_id, position, product_id, name, description, price_cents)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
`
	for i, item := range o.Items {
		if _, err := tx.Exec(ctx, itemQ, o.ID, i, item.ID, item.Name, item.Description, item.PriceCents); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
