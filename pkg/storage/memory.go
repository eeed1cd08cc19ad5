package storage

import (
	"context"
	"sync"
)

// MemoryStrategy is a thread-safe in-memory backend. It models the
// ephemeral tier: contents live only as long as the process.
type MemoryStrategy struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStrategy creates an empty in-memory backend.
func NewMemoryStrategy() *MemoryStrategy {
	return &MemoryStrategy{values: make(map[string]string)}
}

func (m *MemoryStrategy) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MemoryStrategy) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStrategy) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Reset drops every stored value. Simulates a process restart for the
// ephemeral tier in tests.
func (m *MemoryStrategy) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string]string)
}

var _ Strategy = (*MemoryStrategy)(nil)
