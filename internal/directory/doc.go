// Package directory turns the society catalog plus the user's choices into
// the ordered list shown on screen.
//
// The derivation is a fixed three-stage pipeline:
//
//	FilterByCategories -> SortByPreference -> RankByQuery
//
// Each stage is a pure function over its inputs and never mutates the slice
// it receives. State wraps the pipeline with the user's mutable choices
// (selected categories, favourites, query) and the persisted-preference
// boundary, and re-derives the visible list on demand via State.Visible.
package directory
