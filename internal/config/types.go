package config

import "time"

// Layout selects how gallery videos are arranged.
type Layout string

const (
	LayoutGrid     Layout = "grid"
	LayoutCarousel Layout = "carousel"
	LayoutTabs     Layout = "tabs"
)

// SortOrder controls the direction of the final article ordering.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Config is the top-level guidekit configuration, corresponding to .guidekit.yml.
type Config struct {
	Port       int              `yaml:"port" koanf:"port"`
	DataDir    string           `yaml:"data_dir" koanf:"data_dir"`
	CacheAddr  string           `yaml:"cache_addr" koanf:"cache_addr"`
	CacheTTL   time.Duration    `yaml:"cache_ttl" koanf:"cache_ttl"`
	HelpCenter HelpCenterConfig `yaml:"help_center" koanf:"help_center"`
	Embeds     EmbedConfig      `yaml:"embeds" koanf:"embeds"`
	Gallery    GalleryConfig    `yaml:"gallery" koanf:"gallery"`
	Navigation NavigationConfig `yaml:"navigation" koanf:"navigation"`
}

// HelpCenterConfig points at the help-center content API.
type HelpCenterConfig struct {
	BaseURL string `yaml:"base_url" koanf:"base_url"`
	Locale  string `yaml:"locale" koanf:"locale"`
}

// EmbedConfig points at the video embed metadata endpoint.
type EmbedConfig struct {
	BaseURL string        `yaml:"base_url" koanf:"base_url"`
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
}

// GalleryConfig holds default options for gallery widgets.
type GalleryConfig struct {
	IDs          string `yaml:"ids" koanf:"ids"` // comma-separated embed IDs
	Layout       Layout `yaml:"layout" koanf:"layout"`
	ShowTitle    bool   `yaml:"show_title" koanf:"show_title"`
	ShowDuration bool   `yaml:"show_duration" koanf:"show_duration"`
	PlayInline   bool   `yaml:"play_inline" koanf:"play_inline"`
	UseLoader    bool   `yaml:"use_loader" koanf:"use_loader"`
	Template     string `yaml:"template" koanf:"template"`
}

// NavigationConfig holds default options for navigation widgets.
type NavigationConfig struct {
	Labels     []string  `yaml:"labels" koanf:"labels"`
	Properties []string  `yaml:"properties" koanf:"properties"`
	Filter     string    `yaml:"filter" koanf:"filter"`
	Sort       string    `yaml:"sort" koanf:"sort"`
	SortOrder  SortOrder `yaml:"sort_order" koanf:"sort_order"`
	Template   string    `yaml:"template" koanf:"template"`
}
