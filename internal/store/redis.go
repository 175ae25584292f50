package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisKV stores values as plain redis strings without expiry.
type RedisKV struct {
	client redis.Cmdable
}

// NewRedisKV wraps an existing redis client.
func NewRedisKV(client redis.Cmdable) *RedisKV {
	return &RedisKV{client: client}
}

// Get returns the value for key or ErrNotFound.
func (s *RedisKV) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

// Set stores value under key, replacing any previous value.
func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}
