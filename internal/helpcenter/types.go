package helpcenter

import "time"

// Article is a single help-center article. Records are held in memory for one
// render pass only and are never mutated or persisted.
type Article struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body,omitempty"`
	HTMLURL    string    `json:"html_url,omitempty"`
	Draft      bool      `json:"draft"`
	Position   int       `json:"position"`
	SectionID  int64     `json:"section_id"`
	LabelNames []string  `json:"label_names,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// Section groups articles inside a category.
type Section struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Position   int    `json:"position"`
	CategoryID int64  `json:"category_id"`
}

// Category is the top level of the help-center hierarchy.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Collection is the combined document returned by the content API.
type Collection struct {
	Articles   []Article  `json:"articles"`
	Sections   []Section  `json:"sections"`
	Categories []Category `json:"categories"`
}
