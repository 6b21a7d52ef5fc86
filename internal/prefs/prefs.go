// Package prefs maps the directory's persisted preferences onto a key/value
// store: the favourites list and the one-time disclaimer flag.
package prefs

import (
	"encoding/json"
	"strings"

	"societies/internal/debug"
	"societies/internal/domain"
	appErrors "societies/internal/errors"
	"societies/internal/store"
)

const (
	// KeyFavourites holds a JSON array of society names.
	KeyFavourites = "favourites"
	// KeyHasSeenDisclaimer is presence-only: any stored value means seen.
	KeyHasSeenDisclaimer = "hasSeenDisclaimer"
)

var prefsLog = debug.For("prefs")

// Preferences reads and writes persisted directory preferences.
type Preferences struct {
	kv store.KV
}

// New wraps kv. A nil kv behaves like an empty, write-discarding store.
func New(kv store.KV) *Preferences {
	if kv == nil {
		kv = store.NewMemory(nil)
	}
	return &Preferences{kv: kv}
}

// Favourites decodes the stored favourites. Missing, malformed or
// wrongly-typed data yields an empty set; it never fails the caller.
func (p *Preferences) Favourites() domain.Set {
	raw, ok := p.kv.Get(KeyFavourites)
	if !ok || strings.TrimSpace(raw) == "" {
		return domain.Set{}
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		prefsLog.Logf("ignoring malformed %s value %q: %v", KeyFavourites, raw, err)
		return domain.Set{}
	}
	return domain.NewSet(names...)
}

// SaveFavourites writes the set as a sorted JSON array.
func (p *Preferences) SaveFavourites(favourites domain.Set) error {
	data, err := json.Marshal(favourites.Sorted())
	if err != nil {
		return appErrors.New(appErrors.CodeStorageFailed, "encode favourites", err)
	}
	return p.kv.Set(KeyFavourites, string(data))
}

// HasSeenDisclaimer reports whether the disclaimer flag is present.
func (p *Preferences) HasSeenDisclaimer() bool {
	_, ok := p.kv.Get(KeyHasSeenDisclaimer)
	return ok
}

// MarkDisclaimerSeen stores the disclaimer flag.
func (p *Preferences) MarkDisclaimerSeen() error {
	return p.kv.Set(KeyHasSeenDisclaimer, "true")
}
