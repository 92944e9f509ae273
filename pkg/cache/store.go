// Package cache implements the best-effort cache tier over Redis.
//
// The store is never the source of truth: every entry is reconstructible
// from the database or the generator. Errors are returned, not swallowed;
// the resolver decides to degrade them to misses so the swallowing is
// visible at the call site rather than buried here.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a namespaced key-value cache with per-entry expiration.
type Store interface {
	// Get unmarshals the entry at key into dest. The bool reports a hit;
	// backend faults come back as errors alongside a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Put stores value at key with the given TTL.
	Put(ctx context.Context, key string, value any, ttl time.Duration) error

	// InvalidatePrefix deletes every key sharing the given prefix.
	// Administrative reset; not on the hot read path.
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// scanBatchSize is the COUNT hint for SCAN during prefix invalidation.
const scanBatchSize = 100

type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Store backed by the given Redis client.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

var _ Store = (*redisStore)(nil)

func (s *redisStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// A corrupt entry is as good as absent; report it so the caller can log.
		return false, fmt.Errorf("cache entry %s is not valid JSON: %w", key, err)
	}
	return true, nil
}

func (s *redisStore) Put(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache put %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) InvalidatePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, prefix+"*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("cache scan %s*: %w", prefix, err)
		}

		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache delete %d keys under %s: %w", len(keys), prefix, err)
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

type noopStore struct{}

// NewNoopStore creates a Store that misses on every read and accepts every
// write. Used when no Redis backend is configured.
func NewNoopStore() Store {
	return &noopStore{}
}

var _ Store = (*noopStore)(nil)

func (s *noopStore) Get(ctx context.Context, key string, dest any) (bool, error) { return false, nil }

func (s *noopStore) Put(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (s *noopStore) InvalidatePrefix(ctx context.Context, prefix string) error { return nil }
