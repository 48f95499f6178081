package cache

import (
	"context"
	"time"

	"github.com/valkey-io/valkey-go"
)

// ValkeyCache stores entries in a valkey server with a per-entry TTL, so
// multiple guidekit instances can share one content cache.
type ValkeyCache struct {
	client valkey.Client
	ttl    time.Duration
}

var _ Cache = (*ValkeyCache)(nil)

func newValkey(addr string, ttl time.Duration, local bool) (*ValkeyCache, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		DisableCache: local,
		InitAddress:  []string{addr},
	})
	if err != nil {
		return nil, err
	}
	return &ValkeyCache{client: client, ttl: ttl}, nil
}

func (c *ValkeyCache) Get(ctx context.Context, key string) (string, bool, error) {
	cmd := c.client.B().Get().Key(key).Build()
	val, err := c.client.Do(ctx, cmd).ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *ValkeyCache) Set(ctx context.Context, key, value string) error {
	cmd := c.client.B().Set().Key(key).Value(value).Px(c.ttl).Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *ValkeyCache) Delete(ctx context.Context, key string) error {
	cmd := c.client.B().Del().Key(key).Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *ValkeyCache) TTL() time.Duration {
	return c.ttl
}

// Close releases the underlying client connection.
func (c *ValkeyCache) Close() {
	c.client.Close()
}
