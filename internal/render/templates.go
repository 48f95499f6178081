package render

// galleryTemplate renders a gallery widget as an HTML fragment. The widget ID
// scopes every class so multiple instances can coexist on one page.
const galleryTemplate = `<div class="gk-gallery gk-gallery--{{.Layout}}" id="gk-{{.WidgetID}}" data-layout="{{.Layout}}">
{{- if .UseLoader}}
  <div class="gk-gallery__loader" hidden></div>
{{- end}}
  <ul class="gk-gallery__list">
{{- range .Players}}
    <li class="gk-gallery__item{{if not .Ready}} gk-gallery__item--pending{{end}}" data-embed-id="{{.EmbedID}}">
      <figure class="gk-gallery__player"{{if $.PlayInline}} data-inline="true"{{end}}>
{{- if .ThumbnailURL}}
        <img class="gk-gallery__thumb" src="{{.ThumbnailURL}}" alt="{{.Title}}" loading="lazy">
{{- end}}
{{- if $.ShowTitle}}
        <figcaption class="gk-gallery__title">{{.Title}}</figcaption>
{{- end}}
{{- if $.ShowDuration}}
        <span class="gk-gallery__duration">{{formatDuration .Duration}}</span>
{{- end}}
      </figure>
    </li>
{{- end}}
  </ul>
</div>
`

// navigationTemplate renders the previous/next block around the current
// article.
const navigationTemplate = `<nav class="gk-nav" id="gk-{{.WidgetID}}" aria-label="{{.Labels.title}}">
{{- if .Previous}}
  <a class="gk-nav__link gk-nav__link--previous" href="{{.Previous.HTMLURL}}">
    <span class="gk-nav__label">{{.Labels.previous}}</span>
    <span class="gk-nav__title">{{.Previous.Title}}</span>
  </a>
{{- end}}
{{- if .Next}}
  <a class="gk-nav__link gk-nav__link--next" href="{{.Next.HTMLURL}}">
    <span class="gk-nav__label">{{.Labels.next}}</span>
    <span class="gk-nav__title">{{.Next.Title}}</span>
  </a>
{{- end}}
{{- if .Preview}}
  <div class="gk-nav__preview">{{.Preview}}</div>
{{- end}}
</nav>
`

// DefaultLabels are the navigation link labels when none are configured.
var DefaultLabels = map[string]string{
	"title":    "Related articles",
	"previous": "Previous",
	"next":     "Next",
}
