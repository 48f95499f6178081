package cache

import (
	"context"
	"strings"
	"time"
)

// Cache stores short-lived string values under string keys. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	TTL() time.Duration
}

// New returns a cache backed by a valkey server when addr is non-empty, or an
// in-memory cache otherwise.
func New(addr string, ttl time.Duration) (Cache, error) {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if addr == "" {
		return NewMemory(ttl), nil
	}
	return newValkey(addr, ttl, strings.Contains(addr, "127.0.0.1") || strings.Contains(addr, "localhost"))
}
