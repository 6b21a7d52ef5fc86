package directory

import "societies/internal/domain"

// FilterByCategories keeps the societies that carry every selected category.
// An empty selection keeps everything in input order; a selection naming a
// category nobody has yields no societies.
func FilterByCategories(societies []domain.Society, selected domain.Set) []domain.Society {
	out := make([]domain.Society, 0, len(societies))
	if selected.IsEmpty() {
		return append(out, societies...)
	}
	for _, s := range societies {
		if s.HasAllCategories(selected) {
			out = append(out, s)
		}
	}
	return out
}
