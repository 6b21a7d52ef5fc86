package ui

// renderCategoryBar shows every category in first-seen order followed by a
// Clear chip. Selected categories are highlighted.
func (m *App) renderCategoryBar(width int) string {
	categories := m.state.Categories()
	focused := m.focus == FocusCategories

	chips := make([]string, 0, len(categories)+1)
	for i, c := range categories {
		chips = append(chips, renderChip(c, m.state.IsSelected(c), focused && i == m.categoryCursor))
	}

	clearStyle := styleChipClear()
	label := "Clear"
	if focused && m.categoryCursor >= len(categories) {
		clearStyle = clearStyle.Underline(true).Bold(true)
		label = "›Clear"
	}
	chips = append(chips, clearStyle.Render(label))

	return wrapChips(chips, max(width, 1))
}
