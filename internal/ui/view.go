package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

func (m *App) View() string {
	if !m.ready {
		return "Loading societies..."
	}

	top := m.renderTop()
	footer := m.renderFooter()
	body := m.renderBody()
	base := lipgloss.JoinVertical(lipgloss.Left, top, body, footer)

	return m.composeOverlays(base, lipgloss.Height(top))
}

func (m *App) renderTop() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderCategoryBar(m.width),
		m.renderSearchLine(),
	)
}

// updateLayout recomputes pane sizes after a resize or any change that can
// alter the height of the top section.
func (m *App) updateLayout() {
	if !m.ready {
		return
	}
	topHeight := lipgloss.Height(m.renderTop())
	m.bodyHeight = max(m.height-topHeight-1, minBodyHeight+paneChrome)

	_, detailWidth := m.paneWidths()
	if m.showDetails {
		w, h := max(detailWidth-paneChrome, 1), max(m.bodyHeight-paneChrome, 1)
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(w, h)
		} else {
			m.viewport.Width = w
			m.viewport.Height = h
		}
	}
	m.ensureCursorVisible()
	m.updateDetailContent()
}

func (m *App) paneWidths() (list, detail int) {
	if !m.showDetails {
		return m.width, 0
	}
	list = max(m.width*45/100, minListWidth)
	detail = m.width - list
	if detail < minDetailWidth {
		detail = minDetailWidth
		list = max(m.width-detail, 1)
	}
	return list, detail
}

func (m *App) listRows() int {
	return max(m.bodyHeight-paneChrome, 1)
}

func (m *App) ensureCursorVisible() {
	rows := m.listRows()
	if m.cursor < m.listTop {
		m.listTop = m.cursor
	}
	if m.cursor >= m.listTop+rows {
		m.listTop = m.cursor - rows + 1
	}
	m.listTop = clamp(m.listTop, 0, max(len(m.visible.Societies)-rows, 0))
}

func (m *App) renderHeader() string {
	title := styleAppHeader().Render("✦ Societies")
	if m.version != "" {
		title = styleAppHeader().Render("✦ Societies " + m.version)
	}

	total := len(m.state.Societies())
	stats := fmt.Sprintf(" %d shown", len(m.visible.Societies))
	if m.visible.Filtered != total {
		stats = fmt.Sprintf(" %d of %d shown", len(m.visible.Societies), total)
	}
	if q := m.state.Query(); q != "" {
		stats += fmt.Sprintf(" · %d match %q", m.visible.Matched, q)
	}
	if n := m.state.Favorites().Len(); n > 0 {
		stats += fmt.Sprintf(" · ★ %d", n)
	}
	if m.catalogLabel != "" {
		stats += " · " + m.catalogLabel
	}
	line := title + styleStats().Render(stats)
	return truncate(line, m.width)
}

func (m *App) renderSearchLine() string {
	if m.searching {
		return m.textInput.View()
	}
	if q := m.state.Query(); q != "" {
		return styleField().Render("Search:") + " " + q + "  " + styleStats().Render("(Esc clears)")
	}
	return styleStats().Render("/ Search societies...")
}

func (m *App) renderBody() string {
	listWidth, detailWidth := m.paneWidths()
	list := m.renderListPane(listWidth)
	if !m.showDetails {
		return list
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, list, m.renderDetailPane(detailWidth))
}

func (m *App) renderListPane(width int) string {
	innerWidth := max(width-paneChrome, 1)
	rows := m.listRows()

	var lines []string
	if len(m.visible.Societies) == 0 {
		lines = append(lines, styleStats().Render(truncate("No societies match the selected categories.", innerWidth)))
	}
	end := min(m.listTop+rows, len(m.visible.Societies))
	for i := m.listTop; i < end; i++ {
		lines = append(lines, m.renderRow(i, innerWidth))
	}

	style := stylePane()
	if m.focus == FocusList {
		style = stylePaneFocused()
	}
	return style.Width(innerWidth).Height(rows).Render(strings.Join(lines, "\n"))
}

func (m *App) renderRow(i, width int) string {
	s := m.visible.Societies[i]
	selected := i == m.cursor

	star := " "
	if m.state.IsFavorite(s.Name()) {
		star = "★"
	}
	initials := padRight(s.Initials(), 2)
	categories := strings.Join(s.Categories(), " · ")

	if selected {
		plain := fmt.Sprintf("❯ %s %s  %s  %s", star, initials, s.Name(), categories)
		return styleRowSelected().Render(padRight(truncate(plain, width), width))
	}

	line := "  " + styleStar().Render(star) + " " +
		styleAvatar().Render(initials) + "  " +
		styleName().Render(s.Name())
	if categories != "" {
		line += "  " + styleStats().Render(categories)
	}
	return truncate(line, width)
}

func (m *App) renderDetailPane(width int) string {
	style := stylePane()
	if m.focus == FocusDetails {
		style = stylePaneFocused()
	}
	return style.Width(max(width-paneChrome, 1)).Height(m.listRows()).Render(m.viewport.View())
}

// composeOverlays draws modals and toasts over the base frame.
func (m *App) composeOverlays(base string, topHeight int) string {
	disclaimer := m.state.DisclaimerPending()
	toastView := m.renderToast(time.Now())
	if !disclaimer && !m.showHelp && toastView == "" {
		return base
	}

	canvas := NewCanvas(m.width, m.height)
	canvas.DrawStringAt(0, 0, base)
	switch {
	case disclaimer:
		canvas.centerOverlay(renderDisclaimer(m.width), 0, 1)
	case m.showHelp:
		canvas.centerOverlay(renderHelpOverlay(m.keys), topHeight, 1)
	}
	if toastView != "" {
		canvas.bottomRightOverlay(toastView, 1)
	}
	return canvas.Render()
}
