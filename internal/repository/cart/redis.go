package cart

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

// redisRepo keeps each cart in a sorted set keyed by email, scored by
// add time so iteration preserves insertion order. ZADD NX makes adds
// idempotent without touching the original score.
type redisRepo struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) Repository {
	return &redisRepo{client: client}
}

func cartKey(email string) string {
	return "cart:" + email
}

func (r *redisRepo) Get(ctx context.Context, email string) (*domain.Cart, error) {
	return r.fetch(ctx, email)
}

func (r *redisRepo) AddItem(ctx context.Context, email, productID string) (*domain.Cart, error) {
	z := &redis.Z{
		Score:  float64(time.Now().UnixNano()),
		Member: productID,
	}
	if err := r.client.ZAddNX(ctx, cartKey(email), z).Err(); err != nil {
		return nil, err
	}
	return r.fetch(ctx, email)
}

func (r *redisRepo) RemoveItem(ctx context.Context, email, productID string) (*domain.Cart, error) {
	if err := r.client.ZRem(ctx, cartKey(email), productID).Err(); err != nil {
		return nil, err
	}
	return r.fetch(ctx, email)
}

func (r *redisRepo) Clear(ctx context.Context, email string) error {
	return r.client.Del(ctx, cartKey(email)).Err()
}

func (r *redisRepo) fetch(ctx context.Context, email string) (*domain.Cart, error) {
	ids, err := r.client.ZRange(ctx, cartKey(email), 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return &domain.Cart{Email: email, ItemIDs: ids}, nil
}
