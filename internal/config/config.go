package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/guidekit/guidekit/internal/navigation"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (GUIDEKIT_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: GUIDEKIT_PORT -> port, etc.
	if err := k.Load(env.Provider("GUIDEKIT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "GUIDEKIT_")), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLayouts is the set of recognized gallery layout values.
var validLayouts = map[Layout]bool{
	LayoutGrid:     true,
	LayoutCarousel: true,
	LayoutTabs:     true,
}

// validOrders is the set of recognized sort order values.
var validOrders = map[SortOrder]bool{
	OrderAsc:  true,
	OrderDesc: true,
}

// Validate checks that the configuration contains valid values. Named sort
// and filter values are checked against the navigation registries here, at
// load time, so an unknown name fails loudly instead of passing through.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	if c.HelpCenter.BaseURL == "" {
		return fmt.Errorf("help_center.base_url is required")
	}

	if c.Gallery.Layout != "" && !validLayouts[c.Gallery.Layout] {
		return fmt.Errorf("invalid gallery.layout %q: must be one of grid, carousel, tabs", c.Gallery.Layout)
	}

	if c.Navigation.SortOrder != "" && !validOrders[c.Navigation.SortOrder] {
		return fmt.Errorf("invalid navigation.sort_order %q: must be asc or desc", c.Navigation.SortOrder)
	}

	if c.Navigation.Sort != "" && !navigation.KnownComparator(c.Navigation.Sort) {
		return fmt.Errorf("invalid navigation.sort %q: must be one of %s", c.Navigation.Sort, strings.Join(navigation.ComparatorNames(), ", "))
	}

	if c.Navigation.Filter != "" && !navigation.KnownPredicate(c.Navigation.Filter) {
		return fmt.Errorf("invalid navigation.filter %q: must be one of %s", c.Navigation.Filter, strings.Join(navigation.PredicateNames(), ", "))
	}

	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be non-negative")
	}

	return nil
}
