package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/guidekit/guidekit/internal/cache"
	"github.com/guidekit/guidekit/internal/config"
	"github.com/guidekit/guidekit/internal/events"
	"github.com/guidekit/guidekit/internal/gallery"
	"github.com/guidekit/guidekit/internal/helpcenter"
	"github.com/guidekit/guidekit/internal/navigation"
	"github.com/guidekit/guidekit/internal/render"
)

var (
	renderArticleID int64
	renderIDs       []string
	renderTimeout   time.Duration
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a widget fragment to stdout",
}

var renderNavigationCmd = &cobra.Command{
	Use:   "navigation",
	Short: "Render the related-articles navigation for one article",
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderArticleID == 0 {
			return fmt.Errorf("--article-id is required")
		}

		cfg, err := loadValidatedConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
		defer cancel()

		content := helpcenter.NewClient(cfg.HelpCenter.BaseURL, cfg.HelpCenter.Locale)
		col, err := content.FetchCollection(ctx)
		if err != nil {
			return fmt.Errorf("fetching collection: %w", err)
		}

		sorter, err := navigation.NewSorter(navigation.Options{
			Sort:       navigation.SortSpec{Name: cfg.Navigation.Sort},
			Filter:     navigation.FilterSpec{Name: cfg.Navigation.Filter},
			Labels:     cfg.Navigation.Labels,
			Descending: cfg.Navigation.SortOrder == config.OrderDesc,
		})
		if err != nil {
			return fmt.Errorf("building sorter: %w", err)
		}

		nav, err := navigation.Locate(sorter.Sort(col), renderArticleID)
		if err != nil {
			return fmt.Errorf("locating article %d: %w", renderArticleID, err)
		}

		renderer := render.New(cfg.Gallery.Template, cfg.Navigation.Template)
		return renderer.Navigation(os.Stdout, render.NavigationData{
			WidgetID: fmt.Sprintf("cli-%d", renderArticleID),
			Previous: nav.Previous,
			Current:  nav.Current,
			Next:     nav.Next,
		})
	},
}

var renderGalleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Render a video gallery for the given embed IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadValidatedConfig()
		if err != nil {
			return err
		}

		ids := renderIDs
		if len(ids) == 0 {
			return fmt.Errorf("--ids is required")
		}

		ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
		defer cancel()

		ca, err := cache.New(cfg.CacheAddr, cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("creating cache: %w", err)
		}

		embeds := gallery.NewEmbedClient(cfg.Embeds.BaseURL, cfg.Embeds.Timeout, gallery.WithEmbedCache(ca))
		settler := gallery.NewImageSettler(cfg.Embeds.Timeout)

		opts := gallery.Options{
			IDs:          ids,
			Layout:       string(cfg.Gallery.Layout),
			ShowTitle:    cfg.Gallery.ShowTitle,
			ShowDuration: cfg.Gallery.ShowDuration,
			PlayInline:   cfg.Gallery.PlayInline,
			UseLoader:    cfg.Gallery.UseLoader,
		}

		widget := gallery.NewWidget(opts, embeds, settler, gallery.Hooks{
			OnPlayerReady: func(p gallery.Player) {
				if verbose {
					fmt.Fprintf(os.Stderr, "%s %s ready\n", events.TypePlayerReady, p.EmbedID)
				}
			},
		})

		players, err := widget.Run(ctx)
		if err != nil {
			return fmt.Errorf("running gallery: %w", err)
		}

		renderer := render.New(cfg.Gallery.Template, cfg.Navigation.Template)
		return renderer.Gallery(os.Stdout, render.GalleryData{
			WidgetID:     widget.ID(),
			Layout:       opts.Layout,
			ShowTitle:    opts.ShowTitle,
			ShowDuration: opts.ShowDuration,
			PlayInline:   opts.PlayInline,
			UseLoader:    opts.UseLoader,
			Players:      players,
		})
	},
}

func loadValidatedConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func init() {
	renderNavigationCmd.Flags().Int64Var(&renderArticleID, "article-id", 0, "current article ID")
	renderGalleryCmd.Flags().StringSliceVar(&renderIDs, "ids", nil, "embed IDs, in display order")
	renderCmd.PersistentFlags().DurationVar(&renderTimeout, "timeout", 30*time.Second, "overall render timeout")

	renderCmd.AddCommand(renderNavigationCmd)
	renderCmd.AddCommand(renderGalleryCmd)
	rootCmd.AddCommand(renderCmd)
}
