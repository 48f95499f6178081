package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/guidekit/guidekit/internal/config"
	"github.com/guidekit/guidekit/internal/events"
	"github.com/guidekit/guidekit/internal/gallery"
	"github.com/guidekit/guidekit/internal/render"
)

func (s *Server) registerGalleryRoutes(r chi.Router) {
	r.Get("/api/gallery", s.handleGalleryJSON)
	r.Get("/widgets/gallery", s.handleGalleryHTML)
}

// galleryOptions coerces request parameters into widget options, substituting
// configured defaults for absent or malformed values with a logged
// diagnostic. Bad input degrades, it never fails the request.
func (s *Server) galleryOptions(r *http.Request) gallery.Options {
	defaults := s.cfg.Gallery
	opts := gallery.Options{
		IDs:          splitIDs(defaults.IDs),
		Layout:       string(defaults.Layout),
		ShowTitle:    defaults.ShowTitle,
		ShowDuration: defaults.ShowDuration,
		PlayInline:   defaults.PlayInline,
		UseLoader:    defaults.UseLoader,
	}

	q := r.URL.Query()
	if v := q.Get("ids"); v != "" {
		opts.IDs = splitIDs(v)
	}
	if v := q.Get("layout"); v != "" {
		switch config.Layout(v) {
		case config.LayoutGrid, config.LayoutCarousel, config.LayoutTabs:
			opts.Layout = v
		default:
			log.Printf("gallery: unknown layout %q, using %q", v, opts.Layout)
		}
	}
	opts.ShowTitle = boolParam(q.Get("show_title"), opts.ShowTitle)
	opts.ShowDuration = boolParam(q.Get("show_duration"), opts.ShowDuration)
	opts.PlayInline = boolParam(q.Get("play_inline"), opts.PlayInline)
	opts.UseLoader = boolParam(q.Get("use_loader"), opts.UseLoader)

	return opts
}

// runGallery builds and runs a widget, wiring its lifecycle hooks to the
// event dispatcher. Embeds that never resolve leave the returned players
// partially ready once the request deadline hits.
func (s *Server) runGallery(r *http.Request, opts gallery.Options) (*gallery.Widget, []gallery.Player, bool) {
	ctx := r.Context()

	var widget *gallery.Widget
	hooks := gallery.Hooks{
		OnPlayerReady: func(p gallery.Player) {
			s.dispatcher.Emit(ctx, widget.ID(), events.KindGallery, events.TypePlayerReady, p)
		},
		OnAllReady: func(players []gallery.Player) {
			s.dispatcher.Emit(ctx, widget.ID(), events.KindGallery, events.TypePlayersReady, players)
		},
	}
	widget = gallery.NewWidget(opts, s.embeds, s.settler, hooks)

	players, err := widget.Run(ctx)
	if err != nil {
		log.Printf("gallery: widget %s: %v", widget.ID(), err)
		s.dispatcher.Emit(ctx, widget.ID(), events.KindGallery, events.TypeFetchFailed, map[string]string{"error": err.Error()})
		return widget, players, false
	}
	return widget, players, true
}

func (s *Server) handleGalleryJSON(w http.ResponseWriter, r *http.Request) {
	opts := s.galleryOptions(r)
	widget, players, ready := s.runGallery(r, opts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"widget_id": widget.ID(),
		"layout":    opts.Layout,
		"ready":     ready,
		"players":   players,
	})
}

func (s *Server) handleGalleryHTML(w http.ResponseWriter, r *http.Request) {
	opts := s.galleryOptions(r)
	widget, players, _ := s.runGallery(r, opts)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := render.GalleryData{
		WidgetID:     widget.ID(),
		Layout:       opts.Layout,
		ShowTitle:    opts.ShowTitle,
		ShowDuration: opts.ShowDuration,
		PlayInline:   opts.PlayInline,
		UseLoader:    opts.UseLoader,
		Players:      players,
	}
	if err := s.renderer.Gallery(w, data); err != nil {
		log.Printf("gallery: rendering widget %s: %v", widget.ID(), err)
		return
	}
	s.dispatcher.Emit(r.Context(), widget.ID(), events.KindGallery, events.TypeRenderComplete, nil)
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

func boolParam(raw string, fallback bool) bool {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("server: malformed boolean %q, using default", raw)
		return fallback
	}
	return v
}
