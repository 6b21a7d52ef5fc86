package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"societies/internal/directory"
	"societies/internal/domain"
	"societies/internal/prefs"
	"societies/internal/store"
)

func scenarioSocieties() []domain.Society {
	return []domain.Society{
		domain.MustSociety("Chess Club", "Weekly **games** night.", "https://example.org/chess", "", "games"),
		domain.MustSociety("Robotics", "Build robots.", "https://example.org/robotics", "robotics.png", "tech", "games"),
		domain.MustSociety("Debate", "Argue well.", "https://example.org/debate", "", "talks"),
	}
}

type testApp struct {
	*App
	kv     *store.Memory
	copied []string
}

// newTestApp builds a sized App over the scenario societies. The disclaimer
// is pre-acknowledged unless stored says otherwise.
func newTestApp(t *testing.T, stored map[string]string) *testApp {
	t.Helper()
	if stored == nil {
		stored = map[string]string{prefs.KeyHasSeenDisclaimer: "true"}
	}
	kv := store.NewMemory(stored)
	state := directory.New(scenarioSocieties(), prefs.New(kv))

	ta := &testApp{kv: kv}
	app, err := NewApp(Config{
		State:        state,
		OutputFormat: "plain",
		ProjectURL:   "github.com/example/societies",
		CopyToClipboard: func(text string) error {
			ta.copied = append(ta.copied, text)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("NewApp returned error: %v", err)
	}
	ta.App = app
	ta.Update(tea.WindowSizeMsg{Width: 120, Height: 32})
	return ta
}

func (ta *testApp) press(keys ...string) {
	for _, k := range keys {
		ta.Update(keyMsg(k))
	}
}

func (ta *testApp) typeText(text string) {
	for _, r := range text {
		ta.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (ta *testApp) visibleNames() []string {
	return domain.Names(ta.visible.Societies)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}

func assertNames(t *testing.T, got []string, want ...string) {
	t.Helper()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("visible = %v, want %v", got, want)
	}
}
