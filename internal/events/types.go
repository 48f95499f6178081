package events

import (
	"encoding/json"
	"time"
)

// Type categorises a widget lifecycle notification.
type Type string

const (
	TypeRenderComplete Type = "render_complete"
	TypePlayerReady    Type = "player_ready"
	TypePlayersReady   Type = "players_ready"
	TypeFetchFailed    Type = "fetch_failed"
)

// WidgetKind identifies which widget family emitted an event.
type WidgetKind string

const (
	KindGallery    WidgetKind = "gallery"
	KindNavigation WidgetKind = "navigation"
)

// Event is a single widget lifecycle notification.
type Event struct {
	ID         string          `json:"id"`
	WidgetID   string          `json:"widget_id"`
	WidgetKind WidgetKind      `json:"widget_kind"`
	Type       Type            `json:"type"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ListFilter narrows event log queries.
type ListFilter struct {
	WidgetID string
	Type     Type
	Limit    int
}
