package domain

import (
	"reflect"
	"testing"

	appErrors "societies/internal/errors"
)

func TestNewSocietyValidatesName(t *testing.T) {
	_, err := NewSociety("   ", "", "", "", nil)
	if err == nil {
		t.Fatal("expected error for blank name")
	}
	if !appErrors.IsCode(err, appErrors.CodeInvalidSocietyData) {
		t.Fatalf("expected %s, got %s", appErrors.CodeInvalidSocietyData, appErrors.CodeOf(err))
	}
}

func TestNewSocietyNormalisesCategories(t *testing.T) {
	s, err := NewSociety(" Robotics ", "Build robots", "https://example.org/robotics", "", []string{"tech", " games", "tech", ""})
	if err != nil {
		t.Fatalf("NewSociety returned error: %v", err)
	}
	if s.Name() != "Robotics" {
		t.Fatalf("expected trimmed name, got %q", s.Name())
	}
	if got := s.Categories(); !reflect.DeepEqual(got, []string{"tech", "games"}) {
		t.Fatalf("Categories() = %v", got)
	}

	cats := s.Categories()
	cats[0] = "mutated"
	if s.Categories()[0] != "tech" {
		t.Fatal("Categories() must return a copy")
	}
}

func TestHasAllCategories(t *testing.T) {
	robotics := MustSociety("Robotics", "", "", "", "tech", "games")
	empty := MustSociety("Quiet Room", "", "", "")

	tests := []struct {
		name     string
		society  Society
		selected Set
		want     bool
	}{
		{"empty selection matches", robotics, Set{}, true},
		{"single match", robotics, NewSet("games"), true},
		{"all selected present", robotics, NewSet("games", "tech"), true},
		{"one missing", robotics, NewSet("games", "talks"), false},
		{"no categories vs empty selection", empty, Set{}, true},
		{"no categories vs selection", empty, NewSet("games"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.society.HasAllCategories(tt.selected); got != tt.want {
				t.Fatalf("HasAllCategories(%v) = %v, want %v", tt.selected.Sorted(), got, tt.want)
			}
		})
	}
}

func TestAllCategoriesFirstSeenOrder(t *testing.T) {
	societies := []Society{
		MustSociety("Chess Club", "", "", "", "games"),
		MustSociety("Robotics", "", "", "", "tech", "games"),
		MustSociety("Debate", "", "", "", "talks"),
	}
	if got := AllCategories(societies); !reflect.DeepEqual(got, []string{"games", "tech", "talks"}) {
		t.Fatalf("AllCategories() = %v", got)
	}
}

func TestInitials(t *testing.T) {
	if got := MustSociety("Chess Club", "", "", "").Initials(); got != "Ch" {
		t.Fatalf("Initials() = %q", got)
	}
	if got := MustSociety("Ω", "", "", "").Initials(); got != "Ω" {
		t.Fatalf("Initials() on short name = %q", got)
	}
}
