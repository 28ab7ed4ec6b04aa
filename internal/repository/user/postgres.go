package user

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/b4tman/stepik-storeapi/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id::text, email, role, COALESCE(salt, ''), COALESCE(hash, '')
FROM users
WHERE email = $1
`
	var u domain.User
	var role int
	err := r.pool.QueryRow(ctx, q, email).Scan(&u.ID, &u.Email, &role, &u.Salt, &u.Hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("user repo: get email=%s not found", email)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("user repo: get email=%s error=%v", email, err)
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}
