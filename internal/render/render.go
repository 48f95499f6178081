package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/guidekit/guidekit/internal/gallery"
	"github.com/guidekit/guidekit/internal/helpcenter"
)

// Renderer compiles widget templates once and renders HTML fragments from
// widget data. A malformed template override falls back to the built-in
// template with a logged diagnostic; it is never fatal.
type Renderer struct {
	galleryTmpl *template.Template
	navTmpl     *template.Template
	md          goldmark.Markdown
}

// funcMap exposes helpers to widget templates.
var funcMap = template.FuncMap{
	"formatDuration": formatDuration,
}

// New creates a Renderer. Non-empty overrides replace the built-in gallery or
// navigation template.
func New(galleryOverride, navOverride string) *Renderer {
	return &Renderer{
		galleryTmpl: compile("gallery", galleryTemplate, galleryOverride),
		navTmpl:     compile("navigation", navigationTemplate, navOverride),
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// compile parses an override template, falling back to the built-in on error.
func compile(name, builtin, override string) *template.Template {
	if override != "" {
		tmpl, err := template.New(name).Funcs(funcMap).Parse(override)
		if err == nil {
			return tmpl
		}
		log.Printf("render: invalid %s template override, using default: %v", name, err)
	}
	return template.Must(template.New(name).Funcs(funcMap).Parse(builtin))
}

// GalleryData is the payload for the gallery template.
type GalleryData struct {
	WidgetID     string
	Layout       string
	ShowTitle    bool
	ShowDuration bool
	PlayInline   bool
	UseLoader    bool
	Players      []gallery.Player
}

// Gallery renders a gallery widget fragment.
func (r *Renderer) Gallery(w io.Writer, data GalleryData) error {
	if err := r.galleryTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering gallery: %w", err)
	}
	return nil
}

// NavigationData is the payload for the navigation template.
type NavigationData struct {
	WidgetID string
	Previous *helpcenter.Article
	Current  *helpcenter.Article
	Next     *helpcenter.Article
	Labels   map[string]string

	// Preview is the rendered body of the current article, when requested.
	Preview template.HTML
}

// Navigation renders a navigation widget fragment.
func (r *Renderer) Navigation(w io.Writer, data NavigationData) error {
	if data.Labels == nil {
		data.Labels = DefaultLabels
	}
	if err := r.navTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering navigation: %w", err)
	}
	return nil
}

// Snippet converts article markdown to HTML for inline previews.
func (r *Renderer) Snippet(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// formatDuration renders seconds as m:ss (or h:mm:ss above an hour).
func formatDuration(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
