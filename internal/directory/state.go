package directory

import (
	"net/url"
	"strings"

	"societies/internal/debug"
	"societies/internal/domain"

	"golang.org/x/text/language"
)

// PreferenceStore is the persisted side of the directory: favourites and
// the one-time disclaimer flag. Reads must never fail; writes report errors
// but callers treat them as fire-and-forget.
type PreferenceStore interface {
	Favourites() domain.Set
	SaveFavourites(domain.Set) error
	HasSeenDisclaimer() bool
	MarkDisclaimerSeen() error
}

// Option customises a State at construction time.
type Option func(*State)

// WithLocale sets the collation locale used by the preference sorter.
func WithLocale(tag language.Tag) Option {
	return func(s *State) {
		s.locale = tag
	}
}

// WithQuery seeds the initial search text.
func WithQuery(query string) Option {
	return func(s *State) {
		s.query = query
	}
}

// WithSeedLink seeds the initial search text from the "q" parameter of a
// shared link. An explicit WithQuery wins when both are given.
func WithSeedLink(link string) Option {
	return func(s *State) {
		if s.query == "" {
			s.query = SeedQuery(link)
		}
	}
}

// State is the directory's state container. Every transition is a method;
// Visible re-derives the rendered list from the current state. State is not
// safe for concurrent use; the UI event loop serialises access.
type State struct {
	societies  []domain.Society
	categories []string
	known      domain.Set

	selected  domain.Set
	favorites domain.Set
	query     string
	locale    language.Tag

	prefs             PreferenceStore
	disclaimerPending bool
	persistErr        error
}

// New builds the state for a session. The society list is copied and then
// treated as read-only. Favourites and the disclaimer flag are read from
// prefs exactly once here; prefs may be nil for a throwaway session.
func New(societies []domain.Society, prefs PreferenceStore, opts ...Option) *State {
	list := append([]domain.Society(nil), societies...)
	categories := domain.AllCategories(list)
	s := &State{
		societies:  list,
		categories: categories,
		known:      domain.NewSet(categories...),
		locale:     DefaultLocale,
		prefs:      prefs,
	}
	for _, opt := range opts {
		opt(s)
	}
	if prefs != nil {
		s.favorites = prefs.Favourites()
		s.disclaimerPending = !prefs.HasSeenDisclaimer()
	}
	return s
}

// Societies returns the full catalog in its original order.
func (s *State) Societies() []domain.Society {
	return append([]domain.Society(nil), s.societies...)
}

// Categories returns every category in the catalog in first-seen order.
func (s *State) Categories() []string {
	return append([]string(nil), s.categories...)
}

func (s *State) Selected() domain.Set  { return s.selected }
func (s *State) Favorites() domain.Set { return s.favorites }
func (s *State) Query() string         { return s.query }
func (s *State) Locale() language.Tag  { return s.locale }

// IsSelected reports whether category is part of the active filter.
func (s *State) IsSelected(category string) bool {
	return s.selected.Has(category)
}

// IsFavorite reports whether the named society is a favourite.
func (s *State) IsFavorite(name string) bool {
	return s.favorites.Has(name)
}

// ToggleCategory adds or removes category from the filter. Categories that
// no society carries are ignored so the selection stays a subset of the
// catalog's categories.
func (s *State) ToggleCategory(category string) domain.Set {
	if !s.known.Has(category) {
		return s.selected
	}
	s.selected = s.selected.Toggle(category)
	return s.selected
}

// ClearCategories drops every category from the filter.
func (s *State) ClearCategories() {
	s.selected = domain.Set{}
}

// SetQuery replaces the search text.
func (s *State) SetQuery(query string) {
	s.query = query
}

// ToggleFavorite flips name in the favourites set and writes the new set to
// storage before returning. A failed write is logged and remembered for
// PersistError but the in-memory change stands.
func (s *State) ToggleFavorite(name string) domain.Set {
	s.favorites = s.favorites.Toggle(name)
	s.persistErr = nil
	if s.prefs != nil {
		if err := s.prefs.SaveFavourites(s.favorites); err != nil {
			debug.For("directory").Logf("persist favourites after toggling %q: %v", name, err)
			s.persistErr = err
		}
	}
	return s.favorites
}

// DisclaimerPending reports whether the first-run disclaimer still needs
// acknowledging.
func (s *State) DisclaimerPending() bool {
	return s.disclaimerPending
}

// AcknowledgeDisclaimer hides the disclaimer and records that it was seen.
func (s *State) AcknowledgeDisclaimer() {
	s.disclaimerPending = false
	s.persistErr = nil
	if s.prefs == nil {
		return
	}
	if err := s.prefs.MarkDisclaimerSeen(); err != nil {
		debug.For("directory").Logf("persist disclaimer flag: %v", err)
		s.persistErr = err
	}
}

// PersistError returns the error from the most recent failed write, if the
// last write failed.
func (s *State) PersistError() error {
	return s.persistErr
}

// Criteria snapshots the current choices for Apply.
func (s *State) Criteria() Criteria {
	return Criteria{
		Categories: s.selected,
		Favorites:  s.favorites,
		Query:      s.query,
		Locale:     s.locale,
	}
}

// Visible derives the ordered list to render from the current state.
func (s *State) Visible() Result {
	return Apply(s.societies, s.Criteria())
}

// SeedQuery extracts the "q" parameter from a link or raw query string such
// as "https://host/?q=chess", "?q=chess" or "q=chess". Anything unparsable
// yields an empty query.
func SeedQuery(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	raw := link
	if idx := strings.Index(raw, "?"); idx >= 0 {
		raw = raw[idx+1:]
	} else if strings.Contains(raw, "://") {
		return ""
	}
	if idx := strings.Index(raw, "#"); idx >= 0 {
		raw = raw[:idx]
	}
	// ParseQuery keeps the well-formed pairs when others fail to decode.
	values, err := url.ParseQuery(raw)
	if err != nil {
		debug.For("directory").Logf("seed link %q: %v", link, err)
	}
	return values.Get("q")
}
