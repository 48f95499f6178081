package navigation

import (
	"errors"
	"reflect"
	"testing"

	"github.com/guidekit/guidekit/internal/helpcenter"
)

func testCollection() *helpcenter.Collection {
	return &helpcenter.Collection{
		Categories: []helpcenter.Category{
			{ID: 1, Name: "Getting started", Position: 1},
		},
		Sections: []helpcenter.Section{
			{ID: 10, CategoryID: 1, Position: 1, Name: "Basics"},
			{ID: 11, CategoryID: 1, Position: 2, Name: "Advanced"},
		},
		Articles: []helpcenter.Article{
			{ID: 100, SectionID: 10, Position: 1, Title: "First steps"},
			{ID: 101, SectionID: 11, Position: 1, Title: "Deep dive"},
		},
	}
}

func ids(articles []helpcenter.Article) []int64 {
	out := make([]int64, len(articles))
	for i, a := range articles {
		out[i] = a.ID
	}
	return out
}

func TestSortGroupsBySectionAndCategory(t *testing.T) {
	sorter, err := NewSorter(Options{})
	if err != nil {
		t.Fatalf("NewSorter: %v", err)
	}

	sorted := sorter.Sort(testCollection())
	want := []int64{100, 101}
	if got := ids(sorted); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortDeterministic(t *testing.T) {
	sorter, err := NewSorter(Options{})
	if err != nil {
		t.Fatalf("NewSorter: %v", err)
	}

	col := &helpcenter.Collection{
		Categories: []helpcenter.Category{
			{ID: 2, Position: 2}, {ID: 1, Position: 1},
		},
		Sections: []helpcenter.Section{
			{ID: 20, CategoryID: 2, Position: 1},
			{ID: 11, CategoryID: 1, Position: 2},
			{ID: 10, CategoryID: 1, Position: 1},
		},
		Articles: []helpcenter.Article{
			{ID: 5, SectionID: 20, Position: 1},
			{ID: 4, SectionID: 11, Position: 2},
			{ID: 3, SectionID: 11, Position: 1},
			{ID: 2, SectionID: 10, Position: 2},
			{ID: 1, SectionID: 10, Position: 1},
		},
	}

	first := ids(sorter.Sort(col))
	want := []int64{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("expected %v, got %v", want, first)
	}
	for i := 0; i < 10; i++ {
		if got := ids(sorter.Sort(col)); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: expected %v, got %v", i, first, got)
		}
	}
}

func TestSortDescending(t *testing.T) {
	sorter, err := NewSorter(Options{Descending: true})
	if err != nil {
		t.Fatalf("NewSorter: %v", err)
	}

	sorted := sorter.Sort(testCollection())
	want := []int64{101, 100}
	if got := ids(sorted); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortDropsArticleWithoutSection(t *testing.T) {
	col := testCollection()
	col.Articles = append(col.Articles, helpcenter.Article{ID: 102, SectionID: 99, Position: 1})

	sorter, err := NewSorter(Options{})
	if err != nil {
		t.Fatalf("NewSorter: %v", err)
	}

	for _, a := range sorter.Sort(col) {
		if a.ID == 102 {
			t.Error("article with unknown section should be dropped")
		}
	}
}

func TestSortFiltersDraftsByDefault(t *testing.T) {
	col := testCollection()
	col.Articles = append(col.Articles, helpcenter.Article{ID: 103, SectionID: 10, Position: 2, Draft: true})

	sorter, err := NewSorter(Options{})
	if err != nil {
		t.Fatalf("NewSorter: %v", err)
	}
	for _, a := range sorter.Sort(col) {
		if a.ID == 103 {
			t.Error("draft article should be excluded by default filter")
		}
	}

	// "all" passes drafts through.
	sorter, err = NewSorter(Options{Filter: FilterSpec{Name: "all"}})
	if err != nil {
		t.Fatalf("NewSorter: %v", err)
	}
	found := false
	for _, a := range sorter.Sort(col) {
		if a.ID == 103 {
			found = true
		}
	}
	if !found {
		t.Error("draft article should survive the all filter")
	}
}

func TestSortByTitle(t *testing.T) {
	col := testCollection()
	// Both articles in the same section so the comparator decides the order.
	col.Articles = []helpcenter.Article{
		{ID: 100, SectionID: 10, Position: 1, Title: "Zebra"},
		{ID: 101, SectionID: 10, Position: 2, Title: "Aardvark"},
	}

	sorter, err := NewSorter(Options{Sort: SortSpec{Name: "title"}})
	if err != nil {
		t.Fatalf("NewSorter: %v", err)
	}

	want := []int64{101, 100}
	if got := ids(sorter.Sort(col)); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortCustomComparator(t *testing.T) {
	col := testCollection()
	sorter, err := NewSorter(Options{
		Sort:     SortSpec{Custom: func(a, b helpcenter.Article) bool { return a.ID > b.ID }},
		Sections: func(a, b helpcenter.Section) bool { return a.Position > b.Position },
	})
	if err != nil {
		t.Fatalf("NewSorter: %v", err)
	}

	want := []int64{101, 100}
	if got := ids(sorter.Sort(col)); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortSectionFilterDropsArticles(t *testing.T) {
	sorter, err := NewSorter(Options{
		KeepSection: func(s helpcenter.Section) bool { return s.ID != 11 },
	})
	if err != nil {
		t.Fatalf("NewSorter: %v", err)
	}

	want := []int64{100}
	if got := ids(sorter.Sort(testCollection())); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortCategoryFilterDropsSubtree(t *testing.T) {
	sorter, err := NewSorter(Options{
		KeepCategory: func(c helpcenter.Category) bool { return false },
	})
	if err != nil {
		t.Fatalf("NewSorter: %v", err)
	}

	if got := sorter.Sort(testCollection()); len(got) != 0 {
		t.Errorf("expected empty ordering, got %v", ids(got))
	}
}

func TestNewSorterRejectsUnknownNames(t *testing.T) {
	if _, err := NewSorter(Options{Sort: SortSpec{Name: "bogus"}}); err == nil {
		t.Error("expected error for unknown sort name")
	}
	if _, err := NewSorter(Options{Filter: FilterSpec{Name: "bogus"}}); err == nil {
		t.Error("expected error for unknown filter name")
	}
}

func TestLabelFiltering(t *testing.T) {
	col := testCollection()
	col.Articles[0].LabelNames = []string{"faq"}
	col.Articles[1].LabelNames = []string{"internal-only"}

	sorter, err := NewSorter(Options{Labels: []string{"faq"}})
	if err != nil {
		t.Fatalf("NewSorter: %v", err)
	}

	want := []int64{100}
	if got := ids(sorter.Sort(col)); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLocate(t *testing.T) {
	sorter, err := NewSorter(Options{})
	if err != nil {
		t.Fatalf("NewSorter: %v", err)
	}
	sorted := sorter.Sort(testCollection())

	nav, err := Locate(sorted, 101)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if nav.Current == nil || nav.Current.ID != 101 {
		t.Errorf("expected current 101, got %+v", nav.Current)
	}
	if nav.Previous == nil || nav.Previous.ID != 100 {
		t.Errorf("expected previous 100, got %+v", nav.Previous)
	}
	if nav.Next != nil {
		t.Errorf("expected no next at upper boundary, got %+v", nav.Next)
	}
}

func TestLocateLowerBoundary(t *testing.T) {
	sorter, _ := NewSorter(Options{})
	nav, err := Locate(sorter.Sort(testCollection()), 100)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if nav.Previous != nil {
		t.Errorf("expected no previous at lower boundary, got %+v", nav.Previous)
	}
	if nav.Next == nil || nav.Next.ID != 101 {
		t.Errorf("expected next 101, got %+v", nav.Next)
	}
}

func TestLocateNotFound(t *testing.T) {
	sorter, _ := NewSorter(Options{})
	_, err := Locate(sorter.Sort(testCollection()), 999)
	if !errors.Is(err, ErrCurrentNotFound) {
		t.Errorf("expected ErrCurrentNotFound, got %v", err)
	}
}

func TestLocateEmptyList(t *testing.T) {
	if _, err := Locate(nil, 1); !errors.Is(err, ErrCurrentNotFound) {
		t.Errorf("expected ErrCurrentNotFound for empty list, got %v", err)
	}
}

func TestRegistryNames(t *testing.T) {
	if !KnownComparator("position") || !KnownComparator("title") || !KnownComparator("created_at") {
		t.Error("expected built-in comparators to be registered")
	}
	if KnownComparator("name") {
		t.Error("name is not a registered comparator")
	}
	if !KnownPredicate("published") || !KnownPredicate("all") {
		t.Error("expected built-in predicates to be registered")
	}
	if got := ComparatorNames(); len(got) != 3 {
		t.Errorf("expected 3 comparator names, got %v", got)
	}
}

func TestProject(t *testing.T) {
	a := helpcenter.Article{ID: 7, Title: "Hello", HTMLURL: "https://x/7", Position: 3, SectionID: 10}
	got := Project(a, []string{"id", "title", "html_url", "unknown"})
	if got["id"] != int64(7) || got["title"] != "Hello" || got["html_url"] != "https://x/7" {
		t.Errorf("unexpected projection: %v", got)
	}
	if _, ok := got["unknown"]; ok {
		t.Error("unknown property should be omitted")
	}
}
