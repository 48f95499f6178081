package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/guidekit/guidekit/internal/config"
	"github.com/guidekit/guidekit/internal/events"
	"github.com/guidekit/guidekit/internal/gallery"
	"github.com/guidekit/guidekit/internal/helpcenter"
	"github.com/guidekit/guidekit/internal/render"
)

// Server is the guidekit widget server.
type Server struct {
	cfg        *config.Config
	content    *helpcenter.Client
	embeds     *gallery.EmbedClient
	settler    gallery.ImageSettler
	renderer   *render.Renderer
	eventStore *events.Store
	dispatcher *events.Dispatcher
	router     chi.Router
	httpServer *http.Server
}

// New creates a new widget server with all dependencies.
func New(cfg *config.Config, content *helpcenter.Client, embeds *gallery.EmbedClient, settler gallery.ImageSettler, renderer *render.Renderer, eventStore *events.Store, dispatcher *events.Dispatcher) *Server {
	s := &Server{
		cfg:        cfg,
		content:    content,
		embeds:     embeds,
		settler:    settler,
		renderer:   renderer,
		eventStore: eventStore,
		dispatcher: dispatcher,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Widgets are embedded on help-center pages served from other origins.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	events.RegisterRoutes(r, s.eventStore, s.dispatcher)
	s.registerGalleryRoutes(r)
	s.registerNavigationRoutes(r)

	return r
}

// Router returns the chi router, useful for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("guidekit server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
