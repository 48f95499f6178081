package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// Dispatcher persists widget events and fans them out to in-process
// subscribers. A slow subscriber drops events rather than blocking the
// emitting widget.
type Dispatcher struct {
	store *Store

	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

// NewDispatcher creates a Dispatcher backed by the given store.
func NewDispatcher(store *Store) *Dispatcher {
	return &Dispatcher{
		store: store,
		subs:  make(map[chan Event]struct{}),
	}
}

// Publish persists an event and delivers it to every subscriber.
func (d *Dispatcher) Publish(ctx context.Context, e Event) error {
	created, err := d.store.Create(ctx, e)
	if err != nil {
		return fmt.Errorf("recording event: %w", err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	for ch := range d.subs {
		select {
		case ch <- *created:
		default:
			log.Printf("events: dropping %s for slow subscriber", created.Type)
		}
	}
	return nil
}

// Emit marshals payload and publishes the event, logging instead of failing.
// Widgets use this so event delivery can never abort a render pass.
func (d *Dispatcher) Emit(ctx context.Context, widgetID string, kind WidgetKind, typ Type, payload any) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			log.Printf("events: marshalling %s payload: %v", typ, err)
		} else {
			raw = data
		}
	}
	if err := d.Publish(ctx, Event{WidgetID: widgetID, WidgetKind: kind, Type: typ, Payload: raw}); err != nil {
		log.Printf("events: publishing %s: %v", typ, err)
	}
}

// Subscribe registers a new subscriber. The returned cancel function must be
// called to release it.
func (d *Dispatcher) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	d.mu.Lock()
	d.subs[ch] = struct{}{}
	d.mu.Unlock()

	cancel := func() {
		d.mu.Lock()
		delete(d.subs, ch)
		d.mu.Unlock()
	}
	return ch, cancel
}
