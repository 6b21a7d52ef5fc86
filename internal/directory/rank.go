package directory

import (
	"sort"
	"strings"

	"societies/internal/domain"

	"github.com/sahilm/fuzzy"
)

// Ranking is the outcome of RankByQuery with bookkeeping for the status bar.
type Ranking struct {
	Societies []domain.Society
	// Matched counts entries whose name contains every query character in
	// order. They come first; the rest follow in their incoming order.
	Matched int
}

type nameSource []domain.Society

func (n nameSource) String(i int) string { return strings.ToLower(n[i].Name()) }
func (n nameSource) Len() int            { return len(n) }

// RankByQuery reorders societies by how well their names fuzzy-match query.
// Nothing is ever dropped: search only reorders. A blank query returns the
// input order unchanged, and equal scores keep their incoming order.
func RankByQuery(ordered []domain.Society, query string) []domain.Society {
	return Rank(ordered, query).Societies
}

// Rank is RankByQuery with the match count attached.
func Rank(ordered []domain.Society, query string) Ranking {
	out := make([]domain.Society, 0, len(ordered))
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(ordered) == 0 {
		return Ranking{Societies: append(out, ordered...)}
	}

	// FindFromNoSort reports matches in index order; sorting them stably here
	// keeps ties in preference order. A name containing the query as a
	// substring outranks any scattered match regardless of word-start bonuses.
	matches := fuzzy.FindFromNoSort(q, nameSource(ordered))
	contiguous := make([]bool, len(matches))
	for i, m := range matches {
		contiguous[i] = strings.Contains(m.Str, q)
	}
	order := make([]int, len(matches))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if contiguous[i] != contiguous[j] {
			return contiguous[i]
		}
		return matches[i].Score > matches[j].Score
	})

	used := make([]bool, len(ordered))
	for _, idx := range order {
		m := matches[idx]
		if m.Index < 0 || m.Index >= len(ordered) || used[m.Index] {
			continue
		}
		used[m.Index] = true
		out = append(out, ordered[m.Index])
	}
	matched := len(out)
	for i, s := range ordered {
		if !used[i] {
			out = append(out, s)
		}
	}
	return Ranking{Societies: out, Matched: matched}
}
