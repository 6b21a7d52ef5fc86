package directory

import (
	"sort"
	"strings"

	"societies/internal/debug"
	"societies/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is configured or it fails to parse.
var DefaultLocale = language.English

// ParseLocale resolves a BCP 47 tag such as "en" or "fr-CA".
func ParseLocale(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultLocale
	}
	tag, err := language.Parse(value)
	if err != nil {
		debug.For("directory").Logf("unknown locale %q, using %s: %v", value, DefaultLocale, err)
		return DefaultLocale
	}
	return tag
}

// SortByPreference orders societies by name using the locale's collation and
// then moves favourites to the front without disturbing the alphabetical
// order inside either group. Favourites naming absent societies are ignored.
func SortByPreference(societies []domain.Society, favorites domain.Set, locale language.Tag) []domain.Society {
	sorted := make([]domain.Society, len(societies))
	copy(sorted, societies)

	// Collators keep scratch buffers, so each call gets its own.
	col := collate.New(locale)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Name(), sorted[j].Name()
		if c := col.CompareString(a, b); c != 0 {
			return c < 0
		}
		return a < b
	})

	out := make([]domain.Society, 0, len(sorted))
	for _, s := range sorted {
		if favorites.Has(s.Name()) {
			out = append(out, s)
		}
	}
	for _, s := range sorted {
		if !favorites.Has(s.Name()) {
			out = append(out, s)
		}
	}
	return out
}
