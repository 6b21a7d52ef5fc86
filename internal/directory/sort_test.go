package directory

import (
	"testing"

	"societies/internal/domain"

	"golang.org/x/text/language"
)

func TestSortByPreferenceAlphabetical(t *testing.T) {
	societies := []domain.Society{
		domain.MustSociety("Zebra Watchers", "", "", ""),
		domain.MustSociety("Éclair Guild", "", "", ""),
		domain.MustSociety("apple society", "", "", ""),
		domain.MustSociety("Banana Club", "", "", ""),
	}

	got := SortByPreference(societies, domain.Set{}, language.English)

	assertNames(t, got, "apple society", "Banana Club", "Éclair Guild", "Zebra Watchers")
}

func TestSortByPreferencePromotesFavouritesStably(t *testing.T) {
	societies := []domain.Society{
		domain.MustSociety("Delta", "", "", ""),
		domain.MustSociety("Alpha", "", "", ""),
		domain.MustSociety("Echo", "", "", ""),
		domain.MustSociety("Charlie", "", "", ""),
		domain.MustSociety("Bravo", "", "", ""),
	}
	favourites := domain.NewSet("Echo", "Bravo", "Ghost Society")

	got := SortByPreference(societies, favourites, language.English)

	assertNames(t, got, "Bravo", "Echo", "Alpha", "Charlie", "Delta")
}

func TestSortByPreferenceUnfavouritingOnlyMovesThatEntry(t *testing.T) {
	societies := scenarioSocieties()
	withFav := SortByPreference(societies, domain.NewSet("Robotics", "Debate"), language.English)
	assertNames(t, withFav, "Debate", "Robotics", "Chess Club")

	without := SortByPreference(societies, domain.NewSet("Debate"), language.English)
	assertNames(t, without, "Debate", "Chess Club", "Robotics")
}

func TestSortByPreferenceFavouritesNeverFollowOthers(t *testing.T) {
	societies := sampleGrid()
	favourites := domain.NewSet("Society 03", "Society 11", "Society 17", "Society 08")

	got := SortByPreference(societies, favourites, language.English)

	seenOther := false
	for _, s := range got {
		if favourites.Has(s.Name()) {
			if seenOther {
				t.Fatalf("favourite %q appeared after a non-favourite: %v", s.Name(), domain.Names(got))
			}
			continue
		}
		seenOther = true
	}
}

func TestParseLocale(t *testing.T) {
	if got := ParseLocale(""); got != DefaultLocale {
		t.Fatalf("blank locale = %v, want %v", got, DefaultLocale)
	}
	if got := ParseLocale("not a locale!"); got != DefaultLocale {
		t.Fatalf("invalid locale = %v, want %v", got, DefaultLocale)
	}
	if got := ParseLocale("fr"); got != language.French {
		t.Fatalf("fr = %v", got)
	}
}
