package gallery

import (
	"context"
	"sync"
)

// Barrier coordinates N independent child-ready signals plus a trailing
// image-load sub-barrier, completing exactly once. The completion is
// observably ordered after every child-ready signal and every settled image.
//
// There is no cancellation contract: a barrier abandoned before completion is
// simply garbage collected. Callers bound their own wait with Wait's context.
type Barrier struct {
	expected int
	images   func() []string
	settler  ImageSettler

	mu         sync.Mutex
	count      int
	completing bool

	done chan struct{}
}

// NewBarrier creates a barrier expecting the given number of child signals.
// images is invoked once, when the count is reached, to enumerate the image
// URLs that must settle before completion; it may be nil.
func NewBarrier(expected int, images func() []string, settler ImageSettler) *Barrier {
	if expected < 0 {
		expected = 0
	}
	return &Barrier{
		expected: expected,
		images:   images,
		settler:  settler,
		done:     make(chan struct{}),
	}
}

// Arm starts the barrier. With zero expected children the image sub-barrier
// runs immediately and completion fires as soon as it settles.
func (b *Barrier) Arm(ctx context.Context) {
	b.maybeComplete(ctx)
}

// ChildReady records one child-ready signal. Signals beyond the expected
// count are ignored, so a duplicate signal can never fire completion twice.
func (b *Barrier) ChildReady(ctx context.Context, id string) {
	b.mu.Lock()
	if b.completing || b.count >= b.expected {
		b.mu.Unlock()
		return
	}
	b.count++
	b.mu.Unlock()

	b.maybeComplete(ctx)
}

func (b *Barrier) maybeComplete(ctx context.Context) {
	b.mu.Lock()
	if b.completing || b.count < b.expected {
		b.mu.Unlock()
		return
	}
	b.completing = true
	b.mu.Unlock()

	go b.settleImages(ctx)
}

// settleImages waits for every enumerated image to settle, load and error
// alike, then releases the barrier.
func (b *Barrier) settleImages(ctx context.Context) {
	defer close(b.done)

	if b.images == nil || b.settler == nil {
		return
	}

	var wg sync.WaitGroup
	for _, url := range b.images() {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()
			b.settler.Settle(ctx, url)
		}(url)
	}
	wg.Wait()
}

// Done reports when the barrier has completed.
func (b *Barrier) Done() <-chan struct{} {
	return b.done
}

// Wait blocks until the barrier completes or the context is done.
func (b *Barrier) Wait(ctx context.Context) error {
	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
