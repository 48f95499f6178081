package events

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the event log and websocket stream routes.
func RegisterRoutes(r chi.Router, store *Store, dispatcher *Dispatcher) {
	gateway := NewGateway(dispatcher)
	r.Route("/api/events", func(r chi.Router) {
		r.Get("/", handleList(store))
		r.Get("/ws", gateway.handleWebSocket)
	})
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{Limit: 50}
		if v := r.URL.Query().Get("widget_id"); v != "" {
			filter.WidgetID = v
		}
		if v := r.URL.Query().Get("type"); v != "" {
			filter.Type = Type(v)
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				filter.Limit = n
			}
		}

		list, err := store.List(r.Context(), filter)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []Event{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(list)
	}
}
