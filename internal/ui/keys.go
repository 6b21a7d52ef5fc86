package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines every keyboard shortcut. Paired bindings (Up/Down,
// Left/Right) share help text because the help overlay shows them as one row.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Tab      key.Binding
	ShiftTab key.Binding

	// Filters
	Search          key.Binding
	Toggle          key.Binding
	ClearCategories key.Binding
	Escape          key.Binding

	// Actions
	Enter       key.Binding
	Favorite    key.Binding
	Copy        key.Binding
	Theme       key.Binding
	Acknowledge key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓  j/k", "Move up/down"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑/↓  j/k", "Move up/down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→  h/l", "Previous/next category"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("←/→  h/l", "Previous/next category"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home  g", "Jump to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End   G", "Jump to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("PgUp  Ctrl+B", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("PgDn  Ctrl+F", "Page down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("⇥ (Tab)", "Next pane"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("⇧⇥", "Previous pane"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search names"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("Space", "Toggle category"),
		),
		ClearCategories: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Clear categories"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Clear search/close"),
		),

		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎ (Enter)", "Open details"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle favourite"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy link"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Cycle theme"),
		),
		Acknowledge: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("⏎  o", "Okay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}
