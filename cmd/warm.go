package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/guidekit/guidekit/internal/cache"
	"github.com/guidekit/guidekit/internal/gallery"
	"github.com/guidekit/guidekit/internal/helpcenter"
	"github.com/guidekit/guidekit/internal/progress"
)

var warmTimeout time.Duration

var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Prefetch help-center content and embed metadata into the cache",
	Long:  `Fetches the article collection and resolves every configured embed ID so the first widget request after a deploy is served from cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadValidatedConfig()
		if err != nil {
			return err
		}

		ca, err := cache.New(cfg.CacheAddr, cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("creating cache: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
		defer cancel()

		ids := splitComma(cfg.Gallery.IDs)
		reporter := progress.NewReporter()
		reporter.Start(len(ids) + 1)
		step := 0

		content := helpcenter.NewClient(cfg.HelpCenter.BaseURL, cfg.HelpCenter.Locale, helpcenter.WithCache(ca))
		col, err := content.FetchCollection(ctx)
		if err != nil {
			return fmt.Errorf("fetching collection: %w", err)
		}
		step++
		reporter.Update(step, fmt.Sprintf("collection (%d articles)", len(col.Articles)))

		embeds := gallery.NewEmbedClient(cfg.Embeds.BaseURL, cfg.Embeds.Timeout, gallery.WithEmbedCache(ca))
		for _, id := range ids {
			if _, err := embeds.Resolve(ctx, id); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: embed %s: %v\n", id, err)
			}
			step++
			reporter.Update(step, "embed "+id)
		}
		reporter.Finish()

		fmt.Fprintf(os.Stderr, "Warmed %d articles and %d embeds\n", len(col.Articles), len(ids))
		return nil
	},
}

func init() {
	warmCmd.Flags().DurationVar(&warmTimeout, "timeout", 2*time.Minute, "overall warm timeout")
	rootCmd.AddCommand(warmCmd)
}
