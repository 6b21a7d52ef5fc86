package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The disclaimer blocks everything except quitting until acknowledged.
	if m.state.DisclaimerPending() {
		switch {
		case key.Matches(msg, m.keys.Acknowledge):
			m.state.AcknowledgeDisclaimer()
			if err := m.state.PersistError(); err != nil {
				return m, m.showToast(toastError, "Could not remember disclaimer: "+err.Error())
			}
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Escape, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.focus = FocusList
		m.textInput.SetValue(m.state.Query())
		m.textInput.CursorEnd()
		return m, m.textInput.Focus()
	case key.Matches(msg, m.keys.Escape):
		return m, m.handleEscape()
	case key.Matches(msg, m.keys.Tab):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Favorite):
		return m, m.toggleFavorite()
	case key.Matches(msg, m.keys.ClearCategories):
		m.clearCategories()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyLink()
	case key.Matches(msg, m.keys.Theme):
		return m, m.cycleTheme()
	}

	switch m.focus {
	case FocusCategories:
		m.handleCategoryBarKey(msg)
	case FocusDetails:
		m.handleDetailKey(msg)
	default:
		m.handleListKey(msg)
	}
	return m, nil
}

func (m *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Letters are query text here, so only arrow keys move the cursor.
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.textInput.Blur()
		m.textInput.SetValue("")
		m.setQuery("")
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.searching = false
		m.textInput.Blur()
		return m, nil
	case msg.Type == tea.KeyUp:
		m.moveCursor(-1)
		return m, nil
	case msg.Type == tea.KeyDown:
		m.moveCursor(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != m.state.Query() {
		m.setQuery(m.textInput.Value())
	}
	return m, cmd
}

// handleEscape unwinds one level: details, then the query, then the
// category selection.
func (m *App) handleEscape() tea.Cmd {
	switch {
	case m.toast.active() && m.toast.kind == toastError:
		m.toast = toast{}
	case m.showDetails:
		m.showDetails = false
		m.focus = FocusList
		m.updateLayout()
	case m.state.Query() != "":
		m.textInput.SetValue("")
		m.setQuery("")
	case !m.state.Selected().IsEmpty():
		m.clearCategories()
	}
	return nil
}

func (m *App) cycleFocus(step int) {
	areas := []FocusArea{FocusList, FocusCategories}
	if m.showDetails {
		areas = append(areas, FocusDetails)
	}
	idx := 0
	for i, a := range areas {
		if a == m.focus {
			idx = i
			break
		}
	}
	m.focus = areas[(idx+step+len(areas))%len(areas)]
}

func (m *App) handleListKey(msg tea.KeyMsg) {
	page := max(m.listRows()-1, 1)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-page)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(page)
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.visible.Societies))
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.visible.Societies))
	case key.Matches(msg, m.keys.Enter):
		m.showDetails = !m.showDetails
		m.detailCatCursor = 0
		m.updateLayout()
	}
}

func (m *App) handleCategoryBarKey(msg tea.KeyMsg) {
	categories := m.state.Categories()
	// The slot after the last category is the Clear chip.
	last := len(categories)
	switch {
	case key.Matches(msg, m.keys.Left):
		m.categoryCursor = clamp(m.categoryCursor-1, 0, last)
	case key.Matches(msg, m.keys.Right):
		m.categoryCursor = clamp(m.categoryCursor+1, 0, last)
	case key.Matches(msg, m.keys.Home):
		m.categoryCursor = 0
	case key.Matches(msg, m.keys.End):
		m.categoryCursor = last
	case key.Matches(msg, m.keys.Down):
		m.focus = FocusList
	case key.Matches(msg, m.keys.Toggle, m.keys.Enter):
		if m.categoryCursor >= last {
			m.clearCategories()
			return
		}
		m.toggleCategory(categories[m.categoryCursor])
	}
}

func (m *App) handleDetailKey(msg tea.KeyMsg) {
	s, ok := m.currentSociety()
	if !ok {
		return
	}
	categories := s.Categories()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.detailCatCursor = clamp(m.detailCatCursor-1, 0, len(categories)-1)
		m.updateDetailContent()
	case key.Matches(msg, m.keys.Right):
		m.detailCatCursor = clamp(m.detailCatCursor+1, 0, len(categories)-1)
		m.updateDetailContent()
	case key.Matches(msg, m.keys.Up):
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.Toggle, m.keys.Enter):
		if len(categories) == 0 {
			return
		}
		m.toggleCategory(categories[clamp(m.detailCatCursor, 0, len(categories)-1)])
	}
}

func (m *App) moveCursor(delta int) {
	if len(m.visible.Societies) == 0 {
		m.cursor = 0
		return
	}
	prev := m.cursor
	m.cursor = clamp(m.cursor+delta, 0, len(m.visible.Societies)-1)
	if m.cursor != prev {
		m.detailCatCursor = 0
	}
	m.ensureCursorVisible()
	m.updateDetailContent()
}
