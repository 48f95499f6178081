package gallery

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Widget is one gallery instance. The configured embed ID order is the
// display order, and the players slice never reorders.
type Widget struct {
	id      string
	opts    Options
	client  *EmbedClient
	settler ImageSettler
	hooks   Hooks

	mu      sync.Mutex
	players []Player
}

// NewWidget creates a gallery widget for the given options. Each instance
// gets its own identifier, used to scope templates and events.
func NewWidget(opts Options, client *EmbedClient, settler ImageSettler, hooks Hooks) *Widget {
	players := make([]Player, len(opts.IDs))
	for i, id := range opts.IDs {
		players[i] = Player{EmbedID: id}
	}
	return &Widget{
		id:      uuid.New().String(),
		opts:    opts,
		client:  client,
		settler: settler,
		hooks:   hooks,
		players: players,
	}
}

// ID returns the widget instance identifier.
func (w *Widget) ID() string { return w.id }

// Options returns the widget's configured options.
func (w *Widget) Options() Options { return w.opts }

// Run resolves every embed, waits for the readiness barrier, and returns the
// ordered player handles. A child whose metadata cannot be resolved never
// signals ready; the context deadline bounds how long Run waits for it.
func (w *Widget) Run(ctx context.Context) ([]Player, error) {
	barrier := NewBarrier(len(w.opts.IDs), w.readyThumbnails, w.settler)

	for i := range w.opts.IDs {
		go w.resolvePlayer(ctx, i, barrier)
	}
	barrier.Arm(ctx)

	if err := barrier.Wait(ctx); err != nil {
		return w.snapshot(), fmt.Errorf("waiting for players: %w", err)
	}

	players := w.snapshot()
	if w.hooks.OnAllReady != nil {
		w.hooks.OnAllReady(players)
	}
	return players, nil
}

func (w *Widget) resolvePlayer(ctx context.Context, idx int, barrier *Barrier) {
	embedID := w.opts.IDs[idx]

	meta, err := w.client.Resolve(ctx, embedID)
	if err != nil {
		log.Printf("gallery: widget %s: %v", w.id, err)
		return
	}

	w.mu.Lock()
	w.players[idx].Ready = true
	w.players[idx].Title = meta.Title
	w.players[idx].Duration = meta.Duration
	w.players[idx].ThumbnailURL = meta.ThumbnailURL
	player := w.players[idx]
	w.mu.Unlock()

	if w.hooks.OnPlayerReady != nil {
		w.hooks.OnPlayerReady(player)
	}
	barrier.ChildReady(ctx, embedID)
}

// readyThumbnails enumerates the thumbnail URLs present once all players have
// signalled ready. It feeds the barrier's image sub-barrier.
func (w *Widget) readyThumbnails() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var urls []string
	for i := range w.players {
		if w.players[i].Ready && w.players[i].ThumbnailURL != "" {
			urls = append(urls, w.players[i].ThumbnailURL)
		}
	}
	return urls
}

func (w *Widget) snapshot() []Player {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Player, len(w.players))
	copy(out, w.players)
	return out
}
