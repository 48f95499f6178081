package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/guidekit/guidekit/internal/config"
	"github.com/guidekit/guidekit/internal/events"
	"github.com/guidekit/guidekit/internal/helpcenter"
	"github.com/guidekit/guidekit/internal/navigation"
	"github.com/guidekit/guidekit/internal/render"
)

func (s *Server) registerNavigationRoutes(r chi.Router) {
	r.Get("/api/navigation", s.handleNavigationJSON)
	r.Get("/widgets/navigation", s.handleNavigationHTML)
}

// navigationSorter builds a sorter from request parameters on top of the
// configured defaults. Unknown sort or filter names are a reported error, not
// a silent pass-through.
func (s *Server) navigationSorter(r *http.Request) (*navigation.Sorter, error) {
	defaults := s.cfg.Navigation
	opts := navigation.Options{
		Sort:       navigation.SortSpec{Name: defaults.Sort},
		Filter:     navigation.FilterSpec{Name: defaults.Filter},
		Labels:     defaults.Labels,
		Descending: defaults.SortOrder == config.OrderDesc,
	}

	q := r.URL.Query()
	if v := q.Get("sort"); v != "" {
		opts.Sort.Name = v
	}
	if v := q.Get("filter"); v != "" {
		opts.Filter.Name = v
	}
	if v := q.Get("labels"); v != "" {
		opts.Labels = splitIDs(v)
	}
	if v := q.Get("sort_order"); v != "" {
		switch config.SortOrder(v) {
		case config.OrderAsc:
			opts.Descending = false
		case config.OrderDesc:
			opts.Descending = true
		default:
			log.Printf("navigation: unknown sort_order %q, using default", v)
		}
	}

	return navigation.NewSorter(opts)
}

// resolveNavigation runs the full pass: fetch, sort, locate. The returned
// status tells the handler how to respond when nav is nil.
func (s *Server) resolveNavigation(r *http.Request, widgetID string, articleID int64) (*navigation.Context, int) {
	ctx := r.Context()

	sorter, err := s.navigationSorter(r)
	if err != nil {
		log.Printf("navigation: widget %s: %v", widgetID, err)
		return nil, http.StatusBadRequest
	}

	col, err := s.content.FetchCollection(ctx)
	if err != nil {
		// Non-fatal: the widget stays empty rather than crashing the page.
		log.Printf("navigation: widget %s: %v", widgetID, err)
		s.dispatcher.Emit(ctx, widgetID, events.KindNavigation, events.TypeFetchFailed, map[string]string{"error": err.Error()})
		return nil, http.StatusBadGateway
	}

	nav, err := navigation.Locate(sorter.Sort(col), articleID)
	if err != nil {
		if errors.Is(err, navigation.ErrCurrentNotFound) {
			log.Printf("navigation: widget %s: article %d not in sorted list", widgetID, articleID)
			return nil, http.StatusNotFound
		}
		log.Printf("navigation: widget %s: %v", widgetID, err)
		return nil, http.StatusInternalServerError
	}
	return nav, http.StatusOK
}

func (s *Server) handleNavigationJSON(w http.ResponseWriter, r *http.Request) {
	widgetID := uuid.New().String()

	articleID, err := strconv.ParseInt(r.URL.Query().Get("article_id"), 10, 64)
	if err != nil {
		log.Printf("navigation: widget %s: missing or malformed article_id", widgetID)
		http.Error(w, `{"error":"article_id is required"}`, http.StatusBadRequest)
		return
	}

	nav, status := s.resolveNavigation(r, widgetID, articleID)
	if nav == nil {
		http.Error(w, `{"error":"navigation context unavailable"}`, status)
		return
	}

	properties := s.cfg.Navigation.Properties
	if v := r.URL.Query().Get("properties"); v != "" {
		properties = splitIDs(v)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"widget_id": widgetID,
		"previous":  projectPtr(nav.Previous, properties),
		"current":   projectPtr(nav.Current, properties),
		"next":      projectPtr(nav.Next, properties),
		"articles":  projectAll(nav.Articles, properties),
	})
}

func (s *Server) handleNavigationHTML(w http.ResponseWriter, r *http.Request) {
	widgetID := uuid.New().String()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data := render.NavigationData{WidgetID: widgetID, Labels: navLabels(r)}

	articleID, err := strconv.ParseInt(r.URL.Query().Get("article_id"), 10, 64)
	if err != nil {
		log.Printf("navigation: widget %s: missing or malformed article_id", widgetID)
	} else if nav, _ := s.resolveNavigation(r, widgetID, articleID); nav != nil {
		data.Previous = nav.Previous
		data.Current = nav.Current
		data.Next = nav.Next
		if boolParam(r.URL.Query().Get("preview"), false) && nav.Current.Body != "" {
			preview, err := s.renderer.Snippet(nav.Current.Body)
			if err != nil {
				log.Printf("navigation: widget %s: rendering preview: %v", widgetID, err)
			} else {
				data.Preview = preview
			}
		}
	}

	// A widget without context renders visibly empty; the page never breaks.
	if err := s.renderer.Navigation(w, data); err != nil {
		log.Printf("navigation: rendering widget %s: %v", widgetID, err)
		return
	}
	s.dispatcher.Emit(r.Context(), widgetID, events.KindNavigation, events.TypeRenderComplete, nil)
}

// navLabels overlays link label overrides from the request onto the defaults.
func navLabels(r *http.Request) map[string]string {
	labels := make(map[string]string, len(render.DefaultLabels))
	for k, v := range render.DefaultLabels {
		labels[k] = v
	}
	if v := r.URL.Query().Get("previous_label"); v != "" {
		labels["previous"] = v
	}
	if v := r.URL.Query().Get("next_label"); v != "" {
		labels["next"] = v
	}
	return labels
}

func projectPtr(a *helpcenter.Article, properties []string) map[string]any {
	if a == nil {
		return nil
	}
	return navigation.Project(*a, properties)
}

func projectAll(articles []helpcenter.Article, properties []string) []map[string]any {
	out := make([]map[string]any, 0, len(articles))
	for _, a := range articles {
		out = append(out, navigation.Project(a, properties))
	}
	return out
}
