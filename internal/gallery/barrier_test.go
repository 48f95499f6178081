package gallery

import (
	"context"
	"sync"
	"testing"
	"time"
)

// fakeSettler records settled URLs and optionally blocks until released.
type fakeSettler struct {
	mu      sync.Mutex
	settled []string
	release chan struct{}
}

func (f *fakeSettler) Settle(ctx context.Context, url string) {
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
		}
	}
	f.mu.Lock()
	f.settled = append(f.settled, url)
	f.mu.Unlock()
}

func (f *fakeSettler) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.settled)
}

func waitDone(t *testing.T, b *Barrier) {
	t.Helper()
	select {
	case <-b.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("barrier did not complete")
	}
}

func TestBarrierZeroChildren(t *testing.T) {
	b := NewBarrier(0, func() []string { return nil }, &fakeSettler{})
	b.Arm(context.Background())
	waitDone(t, b)
}

func TestBarrierZeroChildrenWithBrokenImage(t *testing.T) {
	// An image that "errors" settles like a loaded one; the barrier must
	// still complete.
	settler := &fakeSettler{}
	b := NewBarrier(0, func() []string { return []string{"https://img.example/broken.png"} }, settler)
	b.Arm(context.Background())
	waitDone(t, b)

	if settler.count() != 1 {
		t.Errorf("expected 1 settled image, got %d", settler.count())
	}
}

func TestBarrierCompletesAfterAllChildren(t *testing.T) {
	ctx := context.Background()
	b := NewBarrier(3, func() []string { return nil }, &fakeSettler{})
	b.Arm(ctx)

	b.ChildReady(ctx, "a")
	b.ChildReady(ctx, "b")
	select {
	case <-b.Done():
		t.Fatal("barrier completed before all children were ready")
	case <-time.After(50 * time.Millisecond):
	}

	b.ChildReady(ctx, "c")
	waitDone(t, b)
}

func TestBarrierExtraSignalsIgnored(t *testing.T) {
	ctx := context.Background()
	b := NewBarrier(2, func() []string { return nil }, &fakeSettler{})
	b.Arm(ctx)

	b.ChildReady(ctx, "a")
	b.ChildReady(ctx, "b")
	waitDone(t, b)

	// Extra signals must not panic or fire completion again. A second
	// completion would close the channel twice and panic.
	b.ChildReady(ctx, "b")
	b.ChildReady(ctx, "c")
}

func TestBarrierWaitsForImages(t *testing.T) {
	ctx := context.Background()
	settler := &fakeSettler{release: make(chan struct{})}
	b := NewBarrier(1, func() []string { return []string{"https://img.example/a.jpg", "https://img.example/b.jpg"} }, settler)
	b.Arm(ctx)
	b.ChildReady(ctx, "a")

	select {
	case <-b.Done():
		t.Fatal("barrier completed before images settled")
	case <-time.After(50 * time.Millisecond):
	}

	close(settler.release)
	waitDone(t, b)

	if settler.count() != 2 {
		t.Errorf("expected 2 settled images, got %d", settler.count())
	}
}

func TestBarrierWaitHonorsContext(t *testing.T) {
	b := NewBarrier(1, nil, nil)
	b.Arm(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := b.Wait(ctx); err == nil {
		t.Error("expected context error waiting on a pending barrier")
	}
}

func TestBarrierConcurrentSignals(t *testing.T) {
	ctx := context.Background()
	const n = 50
	b := NewBarrier(n, func() []string { return nil }, &fakeSettler{})
	b.Arm(ctx)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.ChildReady(ctx, "x")
		}()
	}
	wg.Wait()
	waitDone(t, b)
}
