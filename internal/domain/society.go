package domain

import (
	"fmt"
	"strings"
)

// Society is a single directory entry. Values are immutable once built;
// accessors hand out copies of slice fields.
//
// Business rules enforced:
//   - Name is required (after trimming) and is the identity key.
//   - Categories are a set: blanks are dropped and duplicates collapsed while
//     the first-seen order is kept for display.
type Society struct {
	name        string
	description string
	href        string
	image       string
	categories  []string
	categorySet Set
}

// NewSociety constructs a Society from primitives, enforcing validation.
func NewSociety(name, description, href, image string, categories []string) (Society, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Society{}, invalidSocietyError("society name is required", nil)
	}
	ordered := make([]string, 0, len(categories))
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		ordered = append(ordered, c)
	}
	return Society{
		name:        name,
		description: description,
		href:        strings.TrimSpace(href),
		image:       strings.TrimSpace(image),
		categories:  ordered,
		categorySet: NewSet(ordered...),
	}, nil
}

// MustSociety is NewSociety for fixtures and tests; it panics on invalid input.
func MustSociety(name, description, href, image string, categories ...string) Society {
	s, err := NewSociety(name, description, href, image, categories)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Society) Name() string        { return s.name }
func (s Society) Description() string { return s.description }
func (s Society) Href() string        { return s.href }
func (s Society) Image() string       { return s.image }

// Categories returns the society's tags in first-seen order.
func (s Society) Categories() []string {
	return append([]string(nil), s.categories...)
}

// CategorySet returns the tags as a set for membership tests.
func (s Society) CategorySet() Set {
	return s.categorySet
}

// HasAllCategories reports whether the society carries every selected tag.
// An empty selection is satisfied by every society.
func (s Society) HasAllCategories(selected Set) bool {
	return s.categorySet.ContainsAll(selected)
}

// Initials is the avatar fallback: the first two characters of the name.
func (s Society) Initials() string {
	runes := []rune(s.name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}

// String implements fmt.Stringer for log output.
func (s Society) String() string {
	return fmt.Sprintf("%s [%s]", s.name, strings.Join(s.categories, ", "))
}

// AllCategories returns the union of every society's tags in first-seen
// order, which is the order the category bar displays them in.
func AllCategories(societies []Society) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, s := range societies {
		for _, c := range s.categories {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// Names extracts society names preserving order.
func Names(societies []Society) []string {
	out := make([]string, len(societies))
	for i, s := range societies {
		out[i] = s.name
	}
	return out
}
