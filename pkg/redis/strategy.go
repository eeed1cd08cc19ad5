package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/cloudkit/pkg/storage"
)

// Strategy adapts a Redis client to the storage.Strategy contract. Keys are
// stored without expiry; the session layer owns token lifecycle.
type Strategy struct {
	db redis.UniversalClient
}

// NewStrategy wraps an existing Redis client.
func NewStrategy(client redis.UniversalClient) *Strategy {
	return &Strategy{db: client}
}

// Get returns an empty string for missing keys (redis.Nil becomes "").
func (s *Strategy) Get(ctx context.Context, key string) (string, error) {
	val, err := s.db.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Join(storage.ErrFailure, err)
	}
	return val, nil
}

func (s *Strategy) Set(ctx context.Context, key, value string) error {
	if err := s.db.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Join(storage.ErrFailure, err)
	}
	return nil
}

func (s *Strategy) Delete(ctx context.Context, key string) error {
	if err := s.db.Del(ctx, key).Err(); err != nil {
		return errors.Join(storage.ErrFailure, err)
	}
	return nil
}

var _ storage.Strategy = (*Strategy)(nil)
