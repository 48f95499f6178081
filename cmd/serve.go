package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/guidekit/guidekit/internal/cache"
	"github.com/guidekit/guidekit/internal/config"
	"github.com/guidekit/guidekit/internal/db"
	"github.com/guidekit/guidekit/internal/events"
	"github.com/guidekit/guidekit/internal/gallery"
	"github.com/guidekit/guidekit/internal/helpcenter"
	"github.com/guidekit/guidekit/internal/render"
	"github.com/guidekit/guidekit/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the widget server",
	Long:  `Starts the guidekit HTTP server, exposing the gallery and navigation widgets as JSON and HTML endpoints plus a websocket event stream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		ca, err := cache.New(cfg.CacheAddr, cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("creating cache: %w", err)
		}

		dbPath := filepath.Join(cfg.DataDir, "guidekit.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		content := helpcenter.NewClient(cfg.HelpCenter.BaseURL, cfg.HelpCenter.Locale, helpcenter.WithCache(ca))
		embeds := gallery.NewEmbedClient(cfg.Embeds.BaseURL, cfg.Embeds.Timeout, gallery.WithEmbedCache(ca))
		settler := gallery.NewImageSettler(cfg.Embeds.Timeout)
		renderer := render.New(cfg.Gallery.Template, cfg.Navigation.Template)

		eventStore := events.NewStore(database)
		dispatcher := events.NewDispatcher(eventStore)

		srv := server.New(cfg, content, embeds, settler, renderer, eventStore, dispatcher)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "guidekit v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Help center: %s (%s)\n", cfg.HelpCenter.BaseURL, cfg.HelpCenter.Locale)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)

		return srv.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
