package gallery

// Metadata is what the embed provider reports about one hosted video.
type Metadata struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Duration     float64 `json:"duration"` // seconds
	ThumbnailURL string  `json:"thumbnail_url"`
}

// Player is the runtime handle bound to one embed ID. It starts not ready and
// carries duration and thumbnail once the provider has resolved it. Players
// are owned by their widget instance and die with it.
type Player struct {
	EmbedID      string  `json:"embed_id"`
	Ready        bool    `json:"ready"`
	Title        string  `json:"title,omitempty"`
	Duration     float64 `json:"duration,omitempty"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
}

// Options configures a gallery widget instance.
type Options struct {
	IDs          []string // embed IDs in display order
	Layout       string
	ShowTitle    bool
	ShowDuration bool
	PlayInline   bool
	UseLoader    bool
}

// Hooks aggregates optional lifecycle callbacks for a widget run.
type Hooks struct {
	OnPlayerReady func(Player)
	OnAllReady    func([]Player)
}
