package navigation

import (
	"sort"
	"strings"

	"github.com/guidekit/guidekit/internal/helpcenter"
)

// ArticleLess orders two articles.
type ArticleLess func(a, b helpcenter.Article) bool

// ArticleKeep reports whether an article survives filtering.
type ArticleKeep func(a helpcenter.Article) bool

// SectionLess orders two sections.
type SectionLess func(a, b helpcenter.Section) bool

// SectionKeep reports whether a section survives filtering.
type SectionKeep func(a helpcenter.Section) bool

// CategoryLess orders two categories.
type CategoryLess func(a, b helpcenter.Category) bool

// CategoryKeep reports whether a category survives filtering.
type CategoryKeep func(a helpcenter.Category) bool

// articleComparators maps comparator names to implementations. The upstream
// theme labeled its default "sortByName" while actually ordering by position;
// the registry keeps the honest names and orders by position by default.
var articleComparators = map[string]ArticleLess{
	"position": func(a, b helpcenter.Article) bool { return a.Position < b.Position },
	"title": func(a, b helpcenter.Article) bool {
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	},
	"created_at": func(a, b helpcenter.Article) bool { return a.CreatedAt.Before(b.CreatedAt) },
}

// articlePredicates maps filter names to implementations. The default
// "published" filter excludes draft articles from public navigation.
var articlePredicates = map[string]ArticleKeep{
	"published": func(a helpcenter.Article) bool { return !a.Draft },
	"all":       func(a helpcenter.Article) bool { return true },
}

func defaultSectionLess(a, b helpcenter.Section) bool   { return a.Position < b.Position }
func defaultCategoryLess(a, b helpcenter.Category) bool { return a.Position < b.Position }

// KnownComparator reports whether name is a registered article comparator.
func KnownComparator(name string) bool {
	_, ok := articleComparators[name]
	return ok
}

// KnownPredicate reports whether name is a registered article filter.
func KnownPredicate(name string) bool {
	_, ok := articlePredicates[name]
	return ok
}

// ComparatorNames returns the registered comparator names, sorted.
func ComparatorNames() []string {
	names := make([]string, 0, len(articleComparators))
	for name := range articleComparators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PredicateNames returns the registered filter names, sorted.
func PredicateNames() []string {
	names := make([]string, 0, len(articlePredicates))
	for name := range articlePredicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
