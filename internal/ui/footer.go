package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint is a short key hint for the footer bar; shorter than the help text.
type footerHint struct {
	key  string
	desc string
}

var globalFooterHints = []footerHint{
	{"/", "Search"},
	{"f", "Favourite"},
	{"⇥", "Focus"},
	{"?", "Help"},
	{"q", "Quit"},
}

var listFooterHints = []footerHint{
	{"↑↓", "Navigate"},
	{"⏎", "Details"},
}

var categoryFooterHints = []footerHint{
	{"←→", "Move"},
	{"␣", "Toggle"},
	{"x", "Clear"},
}

var detailFooterHints = []footerHint{
	{"←→", "Category"},
	{"␣", "Toggle"},
	{"y", "Copy link"},
}

var searchFooterHints = []footerHint{
	{"⏎", "Done"},
	{"Esc", "Clear"},
}

// renderFooter renders key hints on the left and the project link on the right.
func (m *App) renderFooter() string {
	var hints []footerHint
	switch {
	case m.searching:
		hints = append(hints, searchFooterHints...)
	case m.focus == FocusCategories:
		hints = append(hints, categoryFooterHints...)
	case m.focus == FocusDetails:
		hints = append(hints, detailFooterHints...)
	default:
		hints = append(hints, listFooterHints...)
	}
	if !m.searching {
		hints = append(hints, globalFooterHints...)
	}

	right := ""
	if m.projectURL != "" {
		right = styleKeyDesc().Render(m.projectURL)
	}
	rightWidth := lipgloss.Width(right)
	hints = trimHintsToFit(hints, m.width-rightWidth-2)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	left := strings.Join(parts, "  ")

	spacing := max(m.width-lipgloss.Width(left)-rightWidth, 2)
	return left + strings.Repeat(" ", spacing) + right
}

func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

// trimHintsToFit drops hints from the end until the rest fit. Context hints
// come first, so global hints go before them.
func trimHintsToFit(hints []footerHint, available int) []footerHint {
	for len(hints) > 0 && renderHintsWidth(hints) > available {
		hints = hints[:len(hints)-1]
	}
	return hints
}

func renderHintsWidth(hints []footerHint) int {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return lipgloss.Width(strings.Join(parts, "  "))
}
