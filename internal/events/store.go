package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/guidekit/guidekit/internal/db"
)

// Store manages persistence of the widget event log.
type Store struct {
	db *db.DB
}

// NewStore creates a new event store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create appends an event to the log.
func (s *Store) Create(ctx context.Context, e Event) (*Event, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	payload := "{}"
	if len(e.Payload) > 0 {
		payload = string(e.Payload)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO widget_events (id, widget_id, widget_kind, type, payload, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.WidgetID, e.WidgetKind, e.Type, payload, e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting event: %w", err)
	}
	return &e, nil
}

// List returns events matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Event, error) {
	query := `SELECT id, widget_id, widget_kind, type, payload, created_at
		 FROM widget_events WHERE 1=1`
	args := []interface{}{}

	if filter.WidgetID != "" {
		query += " AND widget_id = ?"
		args = append(args, filter.WidgetID)
	}
	if filter.Type != "" {
		query += " AND type = ?"
		args = append(args, filter.Type)
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		var payload sql.NullString
		if err := rows.Scan(&e.ID, &e.WidgetID, &e.WidgetKind, &e.Type, &payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		if payload.Valid {
			e.Payload = json.RawMessage(payload.String)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
