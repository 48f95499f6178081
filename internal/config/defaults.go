package config

import "time"

// DefaultProperties are the article fields projected into navigation payloads
// when the configuration does not name its own list.
var DefaultProperties = []string{"id", "title", "html_url", "position"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:     8710,
		DataDir:  ".guidekit",
		CacheTTL: 5 * time.Minute,
		HelpCenter: HelpCenterConfig{
			Locale: "en-us",
		},
		Embeds: EmbedConfig{
			Timeout: 10 * time.Second,
		},
		Gallery: GalleryConfig{
			Layout:       LayoutGrid,
			ShowTitle:    true,
			ShowDuration: true,
			UseLoader:    true,
		},
		Navigation: NavigationConfig{
			Properties: DefaultProperties,
			Filter:     "published",
			Sort:       "position",
			SortOrder:  OrderAsc,
		},
	}
}
