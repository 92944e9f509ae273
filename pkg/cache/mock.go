package cache

import (
	"context"
	"encoding/json"
	"time"
)

// MockStore is a configurable in-memory Store for testing.
// Set the function fields to force behavior; otherwise it acts as a
// working map-backed cache (TTLs are recorded but not enforced).
type MockStore struct {
	// GetFunc overrides Get when set.
	GetFunc func(ctx context.Context, key string, dest any) (bool, error)

	// PutFunc overrides Put when set.
	PutFunc func(ctx context.Context, key string, value any, ttl time.Duration) error

	// InvalidatePrefixFunc overrides InvalidatePrefix when set.
	InvalidatePrefixFunc func(ctx context.Context, prefix string) error

	// Entries holds stored values as JSON when the default behavior is used.
	Entries map[string][]byte

	// TTLs records the TTL passed for each key.
	TTLs map[string]time.Duration

	// Call tracking for verification
	GetCalls              int
	PutCalls              int
	InvalidatePrefixCalls int
}

// NewMockStore creates an empty mock cache.
func NewMockStore() *MockStore {
	return &MockStore{
		Entries: make(map[string][]byte),
		TTLs:    make(map[string]time.Duration),
	}
}

var _ Store = (*MockStore)(nil)

// Get implements Store.
func (m *MockStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	m.GetCalls++
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key, dest)
	}
	raw, ok := m.Entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Put implements Store.
func (m *MockStore) Put(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.PutCalls++
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, value, ttl)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.Entries[key] = raw
	m.TTLs[key] = ttl
	return nil
}

// InvalidatePrefix implements Store.
func (m *MockStore) InvalidatePrefix(ctx context.Context, prefix string) error {
	m.InvalidatePrefixCalls++
	if m.InvalidatePrefixFunc != nil {
		return m.InvalidatePrefixFunc(ctx, prefix)
	}
	for k := range m.Entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(m.Entries, k)
			delete(m.TTLs, k)
		}
	}
	return nil
}
