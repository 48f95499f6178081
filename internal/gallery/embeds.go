package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guidekit/guidekit/internal/cache"
)

// EmbedClient resolves embed IDs into video metadata. The embed provider is a
// black box reached over HTTP.
type EmbedClient struct {
	baseURL string
	http    *http.Client
	cache   cache.Cache
}

// EmbedOption configures an EmbedClient.
type EmbedOption func(*EmbedClient)

// WithEmbedHTTPClient overrides the default HTTP client.
func WithEmbedHTTPClient(hc *http.Client) EmbedOption {
	return func(c *EmbedClient) { c.http = hc }
}

// WithEmbedCache caches resolved metadata per embed ID.
func WithEmbedCache(ca cache.Cache) EmbedOption {
	return func(c *EmbedClient) { c.cache = ca }
}

// NewEmbedClient creates a metadata client for the given provider base URL.
func NewEmbedClient(baseURL string, timeout time.Duration, opts ...EmbedOption) *EmbedClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &EmbedClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve fetches metadata for one embed ID.
func (c *EmbedClient) Resolve(ctx context.Context, id string) (*Metadata, error) {
	cacheKey := "embed:" + id

	if c.cache != nil {
		if raw, ok, err := c.cache.Get(ctx, cacheKey); err == nil && ok {
			var meta Metadata
			if err := json.Unmarshal([]byte(raw), &meta); err == nil {
				return &meta, nil
			}
			_ = c.cache.Delete(ctx, cacheKey)
		}
	}

	endpoint := fmt.Sprintf("%s/api/embeds/%s.json", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating embed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolving embed %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embed provider returned status %d for %s", resp.StatusCode, id)
	}

	var meta Metadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decoding embed metadata for %s: %w", id, err)
	}
	if meta.ID == "" {
		meta.ID = id
	}

	if c.cache != nil {
		if raw, err := json.Marshal(&meta); err == nil {
			if err := c.cache.Set(ctx, cacheKey, string(raw)); err != nil {
				log.Printf("gallery: caching embed %s: %v", id, err)
			}
		}
	}

	return &meta, nil
}
