package store

import (
	"context"
	"errors"
	"time"

	"github.com/foodikal/ordering-go/internal/ratelimit"
	"github.com/redis/go-redis/v9"
)

// RateLimitRedisStore is a Redis implementation of ratelimit.Store.
type RateLimitRedisStore struct {
	client *redis.Client
}

// NewRateLimitRedisStore creates a new Redis-backed rate limit store.
func NewRateLimitRedisStore(client *redis.Client) *RateLimitRedisStore {
	return &RateLimitRedisStore{client: client}
}

func (r *RateLimitRedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		return "", false, err
	}

	return value, true, nil
}

func (r *RateLimitRedisStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Compile-time check.
var _ ratelimit.Store = (*RateLimitRedisStore)(nil)
