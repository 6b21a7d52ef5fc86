package domain

import "sort"

// Set is an immutable collection of distinct strings. It backs both the
// category selection and the favourites list; every mutating method returns
// a new Set and leaves the receiver untouched. The zero value is empty.
type Set struct {
	items map[string]struct{}
}

// NewSet builds a Set from the given values, collapsing duplicates.
func NewSet(values ...string) Set {
	if len(values) == 0 {
		return Set{}
	}
	items := make(map[string]struct{}, len(values))
	for _, v := range values {
		items[v] = struct{}{}
	}
	return Set{items: items}
}

// Has reports membership.
func (s Set) Has(value string) bool {
	_, ok := s.items[value]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return len(s.items) == 0
}

// With returns a copy of s that contains value.
func (s Set) With(value string) Set {
	if s.Has(value) {
		return s
	}
	out := s.clone(len(s.items) + 1)
	out.items[value] = struct{}{}
	return out
}

// Without returns a copy of s that does not contain value.
func (s Set) Without(value string) Set {
	if !s.Has(value) {
		return s
	}
	out := s.clone(len(s.items))
	delete(out.items, value)
	return out
}

// Toggle removes value when present and adds it otherwise.
func (s Set) Toggle(value string) Set {
	if s.Has(value) {
		return s.Without(value)
	}
	return s.With(value)
}

// Sorted returns the members in ascending byte order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same members.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for v := range s.items {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// ContainsAll reports whether every member of other is also in s.
func (s Set) ContainsAll(other Set) bool {
	for v := range other.items {
		if !s.Has(v) {
			return false
		}
	}
	return true
}

func (s Set) clone(capacity int) Set {
	items := make(map[string]struct{}, capacity)
	for v := range s.items {
		items[v] = struct{}{}
	}
	return Set{items: items}
}
