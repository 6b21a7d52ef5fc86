package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"societies/internal/domain"
)

// updateDetailContent re-renders the detail pane for the society under the
// cursor. The viewport offset survives unless the society changed.
func (m *App) updateDetailContent() {
	if !m.showDetails || !m.ready {
		return
	}
	s, ok := m.currentSociety()
	if !ok {
		m.viewport.SetContent(styleStats().Render("Nothing selected."))
		m.viewport.GotoTop()
		return
	}
	m.viewport.SetContent(m.renderDetail(s, m.viewport.Width))
}

func (m *App) renderDetail(s domain.Society, width int) string {
	width = max(width, 10)
	var b strings.Builder

	title := styleDetailTitle().Render(truncate(s.Name(), width-2))
	if m.state.IsFavorite(s.Name()) {
		title += " " + styleStar().Render("★ Favourite")
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	b.WriteString(fieldLine("Link", linkText(s.Href()), width))
	b.WriteString(fieldLine("Avatar", avatarText(s), width))

	b.WriteString(styleField().Render("Categories"))
	b.WriteString("\n")
	b.WriteString(m.renderSocietyCategories(s, width))
	b.WriteString("\n\n")

	if desc := strings.TrimSpace(s.Description()); desc != "" {
		b.WriteString(m.markdownRenderer(width)(desc))
	} else {
		b.WriteString(styleStats().Render("No description."))
	}
	return b.String()
}

func fieldLine(label, value string, width int) string {
	prefix := styleField().Render(padRight(label, 8))
	return truncate(prefix+value, width) + "\n"
}

func linkText(href string) string {
	if strings.TrimSpace(href) == "" {
		return styleStats().Render("none")
	}
	return styleLink().Render(href)
}

// avatarText shows the image location, or the initials badge the list uses
// when a society has no image.
func avatarText(s domain.Society) string {
	if s.Image() != "" {
		return s.Image()
	}
	return styleAvatar().Render(" "+s.Initials()+" ") + styleStats().Render(" (no image)")
}

// renderSocietyCategories lists the society's own categories as chips.
// Selected categories are highlighted and, with the pane focused, the chip
// under the cursor is marked so it can be toggled.
func (m *App) renderSocietyCategories(s domain.Society, width int) string {
	categories := s.Categories()
	if len(categories) == 0 {
		return styleStats().Render("none")
	}
	chips := make([]string, 0, len(categories))
	for i, c := range categories {
		cursor := m.focus == FocusDetails && i == m.detailCatCursor
		chips = append(chips, renderChip(c, m.state.IsSelected(c), cursor))
	}
	return wrapChips(chips, width)
}

func renderChip(label string, selected, cursor bool) string {
	style := styleChip()
	if selected {
		style = styleChipSelected()
	}
	if cursor {
		style = style.Underline(true).Bold(true)
		label = "›" + label
	}
	return style.Render(label)
}

// wrapChips lays chips out left to right, starting a new line when the next
// chip would overflow width.
func wrapChips(chips []string, width int) string {
	var lines []string
	var current []string
	used := 0
	for _, chip := range chips {
		w := lipgloss.Width(chip)
		if used > 0 && used+1+w > width {
			lines = append(lines, strings.Join(current, " "))
			current, used = nil, 0
		}
		if used > 0 {
			used++
		}
		current = append(current, chip)
		used += w
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return strings.Join(lines, "\n")
}

func (m *App) markdownRenderer(width int) func(string) string {
	if m.markdown == nil || m.markdownWidth != width {
		m.markdown = buildMarkdownRenderer(m.outputFormat, width)
		m.markdownWidth = width
	}
	return m.markdown
}
