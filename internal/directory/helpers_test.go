package directory

import (
	"errors"
	"reflect"
	"testing"

	"societies/internal/domain"
)

func scenarioSocieties() []domain.Society {
	return []domain.Society{
		domain.MustSociety("Chess Club", "Weekly games", "https://example.org/chess", "", "games"),
		domain.MustSociety("Robotics", "Build robots", "https://example.org/robotics", "", "tech", "games"),
		domain.MustSociety("Debate", "Argue well", "https://example.org/debate", "", "talks"),
	}
}

func assertNames(t *testing.T, got []domain.Society, want ...string) {
	t.Helper()
	names := domain.Names(got)
	if len(want) == 0 {
		want = []string{}
	}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("got order %v, want %v", names, want)
	}
}

// fakePrefs is an in-memory PreferenceStore that records writes.
type fakePrefs struct {
	favourites    domain.Set
	seen          bool
	saveErr       error
	markErr       error
	saves         []domain.Set
	disclaimerSet int
}

func (f *fakePrefs) Favourites() domain.Set  { return f.favourites }
func (f *fakePrefs) HasSeenDisclaimer() bool { return f.seen }

func (f *fakePrefs) SaveFavourites(s domain.Set) error {
	f.saves = append(f.saves, s)
	if f.saveErr != nil {
		return f.saveErr
	}
	f.favourites = s
	return nil
}

func (f *fakePrefs) MarkDisclaimerSeen() error {
	f.disclaimerSet++
	if f.markErr != nil {
		return f.markErr
	}
	f.seen = true
	return nil
}

var errDiskFull = errors.New("disk full")

// sampleGrid returns twenty societies with overlapping categories and names
// supplied in reverse order.
func sampleGrid() []domain.Society {
	tags := []string{"games", "tech", "talks", "music", "sport"}
	out := make([]domain.Society, 0, 20)
	for i := 19; i >= 0; i-- {
		var cats []string
		for j, tag := range tags {
			if (i+j)%3 == 0 || i%(j+2) == 0 {
				cats = append(cats, tag)
			}
		}
		out = append(out, domain.MustSociety(societyName(i), "", "", "", cats...))
	}
	return out
}

func societyName(i int) string {
	return "Society " + string(rune('0'+i/10)) + string(rune('0'+i%10))
}
