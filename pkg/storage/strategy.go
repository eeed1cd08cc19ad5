package storage

import "context"

// Strategy is the low-level key-value contract every storage backend
// implements. Values are opaque strings; callers own serialization.
//
// Get returns an empty string and no error when the key is absent, so
// callers can treat "missing" and "empty" uniformly. Backend faults are
// wrapped with ErrFailure.
type Strategy interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
