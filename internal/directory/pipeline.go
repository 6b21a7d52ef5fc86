package directory

import (
	"societies/internal/domain"

	"golang.org/x/text/language"
)

// Criteria holds every user choice the pipeline depends on.
type Criteria struct {
	Categories domain.Set
	Favorites  domain.Set
	Query      string
	Locale     language.Tag
}

// Result is the derived, render-ready list.
type Result struct {
	Societies []domain.Society
	// Filtered is the size of the category-filtered subset; Societies is
	// always a permutation of it.
	Filtered int
	// Matched is the number of entries matching a non-blank query.
	Matched int
}

// Apply runs filter, preference sort and fuzzy rank in that order. It is
// referentially transparent: the same inputs always produce the same order.
func Apply(societies []domain.Society, c Criteria) Result {
	filtered := FilterByCategories(societies, c.Categories)
	preferred := SortByPreference(filtered, c.Favorites, c.Locale)
	ranked := Rank(preferred, c.Query)
	return Result{
		Societies: ranked.Societies,
		Filtered:  len(filtered),
		Matched:   ranked.Matched,
	}
}
