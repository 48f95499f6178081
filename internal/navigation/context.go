package navigation

import (
	"errors"

	"github.com/guidekit/guidekit/internal/helpcenter"
)

// ErrCurrentNotFound indicates the configured current article is not present
// in the sorted list, so no navigation context can be computed.
var ErrCurrentNotFound = errors.New("navigation: current article not found in sorted list")

// Context is the navigation neighborhood of one article: its predecessor and
// successor in the linear ordering, plus the full ordering itself.
type Context struct {
	Previous *helpcenter.Article  `json:"previous"`
	Current  *helpcenter.Article  `json:"current"`
	Next     *helpcenter.Article  `json:"next"`
	Articles []helpcenter.Article `json:"articles"`
}

// Locate finds currentID in the sorted list and derives previous and next
// neighbors. Neighbors are nil at either boundary. A currentID that matches
// nothing returns ErrCurrentNotFound: rendering a navigation widget around an
// undefined current article is never what the caller wanted.
func Locate(sorted []helpcenter.Article, currentID int64) (*Context, error) {
	idx := -1
	for i := range sorted {
		if sorted[i].ID == currentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCurrentNotFound
	}

	nav := &Context{
		Current:  &sorted[idx],
		Articles: sorted,
	}
	if idx > 0 {
		nav.Previous = &sorted[idx-1]
	}
	if idx < len(sorted)-1 {
		nav.Next = &sorted[idx+1]
	}
	return nav, nil
}

// Project reduces an article to the configured property list for payloads
// handed to templates and API clients.
func Project(a helpcenter.Article, properties []string) map[string]any {
	out := make(map[string]any, len(properties))
	for _, p := range properties {
		switch p {
		case "id":
			out[p] = a.ID
		case "title":
			out[p] = a.Title
		case "body":
			out[p] = a.Body
		case "html_url":
			out[p] = a.HTMLURL
		case "position":
			out[p] = a.Position
		case "section_id":
			out[p] = a.SectionID
		case "draft":
			out[p] = a.Draft
		case "label_names":
			out[p] = a.LabelNames
		case "created_at":
			out[p] = a.CreatedAt
		}
	}
	return out
}
