package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/guidekit/guidekit/internal/cache"
)

func newTestCache() cache.Cache {
	return cache.NewMemory(time.Minute)
}

// newEmbedServer serves metadata for the given embed IDs and a thumbnail
// endpoint that records hits.
func newEmbedServer(t *testing.T, known ...string) (*httptest.Server, *sync.Map) {
	t.Helper()
	var thumbs sync.Map

	mux := http.NewServeMux()
	mux.HandleFunc("/thumbs/", func(w http.ResponseWriter, r *http.Request) {
		thumbs.Store(r.URL.Path, true)
		w.Write([]byte("png"))
	})

	srv := httptest.NewServer(mux)
	mux.HandleFunc("/api/embeds/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/embeds/"), ".json")
		for _, k := range known {
			if k == id {
				json.NewEncoder(w).Encode(Metadata{
					ID:           id,
					Title:        "Video " + id,
					Duration:     90,
					ThumbnailURL: srv.URL + "/thumbs/" + id + ".png",
				})
				return
			}
		}
		http.NotFound(w, r)
	})

	t.Cleanup(srv.Close)
	return srv, &thumbs
}

func TestWidgetRunResolvesAllPlayersInOrder(t *testing.T) {
	srv, thumbs := newEmbedServer(t, "v1", "v2", "v3")

	client := NewEmbedClient(srv.URL, 5*time.Second)
	settler := NewImageSettler(5 * time.Second)

	var readyMu sync.Mutex
	var readyIDs []string
	var allReady [][]Player

	widget := NewWidget(Options{IDs: []string{"v1", "v2", "v3"}, Layout: "grid"}, client, settler, Hooks{
		OnPlayerReady: func(p Player) {
			readyMu.Lock()
			readyIDs = append(readyIDs, p.EmbedID)
			readyMu.Unlock()
		},
		OnAllReady: func(players []Player) {
			readyMu.Lock()
			allReady = append(allReady, players)
			readyMu.Unlock()
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	players, err := widget.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
	// Display order is caller order regardless of resolution order.
	for i, want := range []string{"v1", "v2", "v3"} {
		if players[i].EmbedID != want {
			t.Errorf("player %d: expected %s, got %s", i, want, players[i].EmbedID)
		}
		if !players[i].Ready {
			t.Errorf("player %d not ready", i)
		}
		if players[i].Duration != 90 {
			t.Errorf("player %d: expected duration 90, got %f", i, players[i].Duration)
		}
	}

	readyMu.Lock()
	defer readyMu.Unlock()
	if len(readyIDs) != 3 {
		t.Errorf("expected 3 player-ready hooks, got %d", len(readyIDs))
	}
	if len(allReady) != 1 {
		t.Fatalf("expected exactly one all-ready hook, got %d", len(allReady))
	}

	// Every thumbnail settled before completion.
	count := 0
	thumbs.Range(func(_, _ any) bool { count++; return true })
	if count != 3 {
		t.Errorf("expected 3 thumbnail fetches, got %d", count)
	}
}

func TestWidgetRunEmptyIDList(t *testing.T) {
	srv, _ := newEmbedServer(t)
	client := NewEmbedClient(srv.URL, time.Second)

	widget := NewWidget(Options{}, client, NewImageSettler(time.Second), Hooks{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	players, err := widget.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(players) != 0 {
		t.Errorf("expected no players, got %d", len(players))
	}
}

func TestWidgetRunUnresolvableEmbedTimesOut(t *testing.T) {
	srv, _ := newEmbedServer(t, "v1")
	client := NewEmbedClient(srv.URL, time.Second)

	widget := NewWidget(Options{IDs: []string{"v1", "missing"}}, client, NewImageSettler(time.Second), Hooks{})

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	players, err := widget.Run(ctx)
	if err == nil {
		t.Fatal("expected error for a child that never signals ready")
	}
	if len(players) != 2 {
		t.Fatalf("expected partial players, got %d", len(players))
	}
	if players[1].Ready {
		t.Error("unresolvable player should not be ready")
	}
}

func TestEmbedClientCache(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		json.NewEncoder(w).Encode(Metadata{ID: "v1", Title: "Cached", Duration: 10})
	}))
	t.Cleanup(srv.Close)

	client := NewEmbedClient(srv.URL, time.Second, WithEmbedCache(newTestCache()))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		meta, err := client.Resolve(ctx, "v1")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if meta.Title != "Cached" {
			t.Errorf("unexpected title %q", meta.Title)
		}
	}
	if hits != 1 {
		t.Errorf("expected 1 upstream hit, got %d", hits)
	}
}

func TestEmbedClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := NewEmbedClient(srv.URL, time.Second)
	if _, err := client.Resolve(context.Background(), "v1"); err == nil {
		t.Error("expected error on non-200 status")
	}
}

func TestFormatMetadataFallbackID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"title":"No ID","duration":5}`)
	}))
	t.Cleanup(srv.Close)

	client := NewEmbedClient(srv.URL, time.Second)
	meta, err := client.Resolve(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if meta.ID != "abc" {
		t.Errorf("expected fallback ID abc, got %q", meta.ID)
	}
}
