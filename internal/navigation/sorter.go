package navigation

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/guidekit/guidekit/internal/helpcenter"
)

// SortSpec selects an article comparator. The zero value means the default
// (ascending position). Name is resolved against the comparator registry when
// the sorter is built; Custom takes precedence over Name.
type SortSpec struct {
	Name   string
	Custom ArticleLess
}

// FilterSpec selects an article filter. The zero value means the default
// ("published", excluding drafts). Custom takes precedence over Name.
type FilterSpec struct {
	Name   string
	Custom ArticleKeep
}

// Options configures a Sorter.
type Options struct {
	Sort   SortSpec
	Filter FilterSpec

	// Sections and Categories override the per-level orderings. Left nil,
	// both levels order by ascending position.
	Sections   SectionLess
	Categories CategoryLess

	// KeepSection and KeepCategory filter their levels. Left nil, every
	// section and category is kept. Articles under a filtered-out section
	// never reach the final ordering.
	KeepSection  SectionKeep
	KeepCategory CategoryKeep

	// Labels restricts articles to those carrying a label matching at least
	// one of the glob patterns. Empty means no label filtering.
	Labels []string

	// Descending reverses the final ordering once.
	Descending bool
}

// Sorter turns a help-center collection into one linear, human-meaningful
// article ordering: categories in their own order, each category's sections
// in their own order, and each section's articles in article order.
type Sorter struct {
	less         ArticleLess
	keep         ArticleKeep
	sectionLess  SectionLess
	sectionKeep  SectionKeep
	categoryLess CategoryLess
	categoryKeep CategoryKeep
	labels       []string
	descending   bool
}

// NewSorter resolves the configured specs into concrete comparators and
// predicates. Unknown names are an error rather than a silent pass-through.
func NewSorter(opts Options) (*Sorter, error) {
	s := &Sorter{
		less:         articleComparators["position"],
		keep:         articlePredicates["published"],
		sectionLess:  defaultSectionLess,
		categoryLess: defaultCategoryLess,
		labels:       opts.Labels,
		descending:   opts.Descending,
	}

	switch {
	case opts.Sort.Custom != nil:
		s.less = opts.Sort.Custom
	case opts.Sort.Name != "":
		less, ok := articleComparators[opts.Sort.Name]
		if !ok {
			return nil, fmt.Errorf("unknown sort %q", opts.Sort.Name)
		}
		s.less = less
	}

	switch {
	case opts.Filter.Custom != nil:
		s.keep = opts.Filter.Custom
	case opts.Filter.Name != "":
		keep, ok := articlePredicates[opts.Filter.Name]
		if !ok {
			return nil, fmt.Errorf("unknown filter %q", opts.Filter.Name)
		}
		s.keep = keep
	}

	if opts.Sections != nil {
		s.sectionLess = opts.Sections
	}
	if opts.Categories != nil {
		s.categoryLess = opts.Categories
	}
	s.sectionKeep = opts.KeepSection
	s.categoryKeep = opts.KeepCategory

	for _, pattern := range opts.Labels {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid label pattern %q", pattern)
		}
	}

	return s, nil
}

// Sort produces the linear article ordering for the collection. The result is
// deterministic for a given collection and configuration. Articles whose
// section is absent from the filtered section set are dropped.
func (s *Sorter) Sort(col *helpcenter.Collection) []helpcenter.Article {
	if col == nil {
		return nil
	}

	categories := make([]helpcenter.Category, 0, len(col.Categories))
	for _, c := range col.Categories {
		if s.categoryKeep == nil || s.categoryKeep(c) {
			categories = append(categories, c)
		}
	}
	sections := make([]helpcenter.Section, 0, len(col.Sections))
	for _, sec := range col.Sections {
		if s.sectionKeep == nil || s.sectionKeep(sec) {
			sections = append(sections, sec)
		}
	}

	var articles []helpcenter.Article
	for _, a := range col.Articles {
		if !s.keep(a) {
			continue
		}
		if !s.matchesLabels(a) {
			continue
		}
		articles = append(articles, a)
	}

	sort.SliceStable(categories, func(i, j int) bool { return s.categoryLess(categories[i], categories[j]) })
	sort.SliceStable(sections, func(i, j int) bool { return s.sectionLess(sections[i], sections[j]) })
	sort.SliceStable(articles, func(i, j int) bool { return s.less(articles[i], articles[j]) })

	// Group articles by section within category, one forward pass per level.
	bySection := make(map[int64][]helpcenter.Article, len(sections))
	for _, a := range articles {
		bySection[a.SectionID] = append(bySection[a.SectionID], a)
	}

	sorted := make([]helpcenter.Article, 0, len(articles))
	for _, cat := range categories {
		for _, sec := range sections {
			if sec.CategoryID != cat.ID {
				continue
			}
			sorted = append(sorted, bySection[sec.ID]...)
		}
	}

	if s.descending {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}

	return sorted
}

func (s *Sorter) matchesLabels(a helpcenter.Article) bool {
	if len(s.labels) == 0 {
		return true
	}
	for _, pattern := range s.labels {
		for _, label := range a.LabelNames {
			if ok, _ := doublestar.Match(pattern, label); ok {
				return true
			}
		}
	}
	return false
}
