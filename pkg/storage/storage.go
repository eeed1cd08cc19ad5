package storage

import (
	"context"
	"encoding/json"
	"errors"
)

// Storage is a typed view over a Strategy. Values are serialized to JSON
// before hitting the backend, so any JSON-encodable type works.
type Storage[T any] struct {
	strategy Strategy
	prefix   string
}

// Option configures a typed storage instance.
type Option func(*settings)

type settings struct {
	prefix string
}

// WithPrefix namespaces every key written through this instance.
func WithPrefix(prefix string) Option {
	return func(s *settings) { s.prefix = prefix }
}

// New creates a typed storage over the given strategy.
func New[T any](strategy Strategy, opts ...Option) *Storage[T] {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	return &Storage[T]{strategy: strategy, prefix: s.prefix}
}

// Get reads and decodes the value stored under key. The second return value
// reports whether the key was present.
func (s *Storage[T]) Get(ctx context.Context, key string) (T, bool, error) {
	var zero T

	raw, err := s.strategy.Get(ctx, s.prefix+key)
	if err != nil {
		return zero, false, err
	}
	if raw == "" {
		return zero, false, nil
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return zero, false, errors.Join(ErrCorruptValue, err)
	}
	return value, true, nil
}

// Set encodes and stores the value under key.
func (s *Storage[T]) Set(ctx context.Context, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Join(ErrCorruptValue, err)
	}
	return s.strategy.Set(ctx, s.prefix+key, string(raw))
}

// Delete removes the value stored under key. Deleting an absent key is not
// an error.
func (s *Storage[T]) Delete(ctx context.Context, key string) error {
	return s.strategy.Delete(ctx, s.prefix+key)
}
