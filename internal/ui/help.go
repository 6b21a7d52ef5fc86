package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type helpSection struct {
	title string
	rows  [][]string // [keys, description]
}

// getHelpSections derives the help rows from the key map so the overlay
// never drifts from the real bindings.
func getHelpSections(keys KeyMap) []helpSection {
	return []helpSection{
		{
			title: "NAVIGATION",
			rows: [][]string{
				{keys.Up.Help().Key, keys.Up.Help().Desc},
				{keys.Home.Help().Key, keys.Home.Help().Desc},
				{keys.End.Help().Key, keys.End.Help().Desc},
				{keys.PageUp.Help().Key, keys.PageUp.Help().Desc},
				{keys.PageDown.Help().Key, keys.PageDown.Help().Desc},
				{keys.Tab.Help().Key, keys.Tab.Help().Desc},
				{keys.ShiftTab.Help().Key, keys.ShiftTab.Help().Desc},
			},
		},
		{
			title: "FILTERS",
			rows: [][]string{
				{keys.Search.Help().Key, keys.Search.Help().Desc},
				{keys.Left.Help().Key, keys.Left.Help().Desc},
				{keys.Toggle.Help().Key, keys.Toggle.Help().Desc},
				{keys.ClearCategories.Help().Key, keys.ClearCategories.Help().Desc},
				{keys.Escape.Help().Key, keys.Escape.Help().Desc},
			},
		},
		{
			title: "ACTIONS",
			rows: [][]string{
				{keys.Enter.Help().Key, keys.Enter.Help().Desc},
				{keys.Favorite.Help().Key, keys.Favorite.Help().Desc},
				{keys.Copy.Help().Key, keys.Copy.Help().Desc},
				{keys.Theme.Help().Key, keys.Theme.Help().Desc},
				{keys.Quit.Help().Key, keys.Quit.Help().Desc},
			},
		},
	}
}

// renderHelpOverlay builds the help modal; the caller positions it.
func renderHelpOverlay(keys KeyMap) string {
	sections := getHelpSections(keys)

	left := renderHelpSectionTable(sections[0])
	right := lipgloss.JoinVertical(lipgloss.Left,
		renderHelpSectionTable(sections[1]),
		"",
		renderHelpSectionTable(sections[2]),
	)
	columns := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)

	dividerWidth := max(lipgloss.Width(columns), 40)
	content := lipgloss.JoinVertical(lipgloss.Center,
		styleHelpTitle().Render("✦ SOCIETIES HELP ✦"),
		styleHelpDivider().Render(strings.Repeat("─", dividerWidth)),
		"",
		columns,
		"",
		styleHelpFooter().Render("Press ? or Esc to close"),
	)
	return styleHelpOverlay().Render(content)
}

func renderHelpSectionTable(section helpSection) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return styleHelpKey().Width(14)
			}
			return styleHelpDesc()
		}).
		Rows(section.rows...)

	header := styleHelpSectionHeader().Render(section.title)
	underline := styleHelpDivider().Render(strings.Repeat("─", len(section.title)))
	// A hidden border still emits an empty top row.
	body := strings.TrimPrefix(t.String(), "\n")

	return lipgloss.JoinVertical(lipgloss.Left, header, underline, body)
}
