// Package ui implements the interactive society directory on Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"societies/internal/debug"
	"societies/internal/directory"
	"societies/internal/domain"
	"societies/internal/ui/theme"
)

const (
	minListWidth   = 30
	minDetailWidth = 24
	minBodyHeight  = 3
	paneChrome     = 2
)

var uiLog = debug.For("ui")

// FocusArea identifies which region receives navigation keys.
type FocusArea int

const (
	FocusList FocusArea = iota
	FocusCategories
	FocusDetails
)

// Config configures the UI application.
type Config struct {
	State        *directory.State
	OutputFormat string // markdown style for descriptions: rich, light, plain
	ProjectURL   string
	Version      string
	CatalogLabel string

	// SaveTheme persists a theme chosen with the cycle key. Optional.
	SaveTheme func(name string) error
	// CopyToClipboard defaults to the system clipboard.
	CopyToClipboard func(text string) error
}

// App is the Bubble Tea model for the directory.
type App struct {
	state   *directory.State
	visible directory.Result
	keys    KeyMap

	cursor          int
	listTop         int
	categoryCursor  int
	detailCatCursor int
	focus           FocusArea
	showDetails     bool
	showHelp        bool
	searching       bool

	textInput textinput.Model
	viewport  viewport.Model

	width      int
	height     int
	bodyHeight int
	ready      bool

	toast toast

	markdown      func(string) string
	markdownWidth int

	outputFormat    string
	projectURL      string
	version         string
	catalogLabel    string
	saveTheme       func(string) error
	copyToClipboard func(string) error
}

// NewApp builds the model around an initialised directory state.
func NewApp(cfg Config) (*App, error) {
	if cfg.State == nil {
		return nil, fmt.Errorf("ui: directory state is required")
	}
	ti := textinput.New()
	ti.Placeholder = "Search societies..."
	ti.Prompt = "/"
	ti.SetValue(cfg.State.Query())

	copyFn := cfg.CopyToClipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	m := &App{
		state:           cfg.State,
		keys:            DefaultKeyMap(),
		textInput:       ti,
		focus:           FocusList,
		outputFormat:    cfg.OutputFormat,
		projectURL:      cfg.ProjectURL,
		version:         cfg.Version,
		catalogLabel:    cfg.CatalogLabel,
		saveTheme:       cfg.SaveTheme,
		copyToClipboard: copyFn,
	}
	m.refresh()
	return m, nil
}

func (m *App) Init() tea.Cmd {
	return textinput.Blink
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateLayout()
		return m, nil
	case toastTickMsg:
		if !m.toast.active() {
			m.toast = toast{}
			return m, nil
		}
		return m, scheduleToastTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.searching {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// refresh re-derives the visible list and keeps the cursor on the same
// society when it is still visible.
func (m *App) refresh() {
	current := m.currentName()
	m.visible = m.state.Visible()

	m.cursor = clamp(m.cursor, 0, len(m.visible.Societies)-1)
	if current != "" {
		for i, s := range m.visible.Societies {
			if s.Name() == current {
				m.cursor = i
				break
			}
		}
	}
	m.updateLayout()
}

func (m *App) currentSociety() (domain.Society, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible.Societies) {
		return domain.Society{}, false
	}
	return m.visible.Societies[m.cursor], true
}

func (m *App) currentName() string {
	if s, ok := m.currentSociety(); ok {
		return s.Name()
	}
	return ""
}

func (m *App) toggleFavorite() tea.Cmd {
	s, ok := m.currentSociety()
	if !ok {
		return nil
	}
	m.state.ToggleFavorite(s.Name())
	m.refresh()
	if err := m.state.PersistError(); err != nil {
		return m.showToast(toastError, "Could not save favourites: "+err.Error())
	}
	return nil
}

func (m *App) toggleCategory(category string) {
	m.state.ToggleCategory(category)
	m.refresh()
}

func (m *App) clearCategories() {
	m.state.ClearCategories()
	m.refresh()
}

func (m *App) setQuery(query string) {
	m.state.SetQuery(query)
	m.listTop = 0
	m.refresh()
}

func (m *App) copyLink() tea.Cmd {
	s, ok := m.currentSociety()
	if !ok {
		return nil
	}
	if strings.TrimSpace(s.Href()) == "" {
		return m.showToast(toastError, s.Name()+" has no link.")
	}
	if err := m.copyToClipboard(s.Href()); err != nil {
		uiLog.Logf("clipboard write failed: %v", err)
		return m.showToast(toastError, "Clipboard unavailable: "+err.Error())
	}
	return m.showToast(toastSuccess, fmt.Sprintf("Copied link for '%s'.", s.Name()))
}

func (m *App) cycleTheme() tea.Cmd {
	name := theme.Cycle()
	m.updateLayout()
	if m.saveTheme != nil {
		if err := m.saveTheme(name); err != nil {
			uiLog.Logf("save theme %s: %v", name, err)
			return m.showToast(toastError, "Theme not saved: "+err.Error())
		}
	}
	return m.showToast(toastSuccess, "Theme: "+name)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
