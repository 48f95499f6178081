package gallery

import (
	"context"
	"net/http"
	"time"
)

// ImageSettler waits for one image to finish loading. Settle returns when the
// image has settled, whether it loaded or failed: a broken image must never
// block readiness.
type ImageSettler interface {
	Settle(ctx context.Context, url string)
}

// HTTPImageSettler settles images by fetching them over HTTP. The per-image
// timeout is a hardening addition over the browser behavior, which would wait
// on a stalled image indefinitely.
type HTTPImageSettler struct {
	http    *http.Client
	timeout time.Duration
}

// NewImageSettler creates a settler with the given per-image timeout.
func NewImageSettler(timeout time.Duration) *HTTPImageSettler {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPImageSettler{
		http:    &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Settle fetches the image and discards the result. Load and error both count
// as settled.
func (s *HTTPImageSettler) Settle(ctx context.Context, url string) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}
