package helpcenter

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

// Client fetches help-center content over HTTP. The content API is treated as
// a black box returning the combined collection document.
type Client struct {
	baseURL string
	locale  string
	http    *http.Client
	cache   cache.Cache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithCache caches fetched collections under the client's locale.
func WithCache(ca cache.Cache) Option {
	return func(c *Client) { c.cache = ca }
}

// NewClient creates a content client for the given base URL and locale.
func NewClient(baseURL, locale string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		locale:  locale,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Locale returns the locale the client fetches content for.
func (c *Client) Locale() string { return c.locale }

// FetchCollection retrieves the full article/section/category collection with
// sections and categories sideloaded in a single GET.
func (c *Client) FetchCollection(ctx context.Context) (*Collection, error) {
	cacheKey := "helpcenter:collection:" + c.locale

	if c.cache != nil {
		if raw, ok, err := c.cache.Get(ctx, cacheKey); err == nil && ok {
			var col Collection
			if err := json.Unmarshal([]byte(raw), &col); err == nil {
				return &col, nil
			}
			// Corrupt cache entry: drop it and refetch.
			_ = c.cache.Delete(ctx, cacheKey)
		}
	}

	endpoint := fmt.Sprintf("%s/api/v2/help_center/%s/articles.json", c.baseURL, url.PathEscape(c.locale))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating content request: %w", err)
	}
	q := req.URL.Query()
	q.Set("include", "sections,categories")
	q.Set("per_page", "100")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching collection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content API returned status %d", resp.StatusCode)
	}

	var col Collection
	if err := json.NewDecoder(resp.Body).Decode(&col); err != nil {
		return nil, fmt.Errorf("decoding collection: %w", err)
	}

	if c.cache != nil {
		if raw, err := json.Marshal(&col); err == nil {
			if err := c.cache.Set(ctx, cacheKey, string(raw)); err != nil {
				log.Printf("helpcenter: caching collection: %v", err)
			}
		}
	}

	return &col, nil
}
