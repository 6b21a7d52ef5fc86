package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	successToastDuration = 4 * time.Second
	errorToastDuration   = 8 * time.Second
	toastTickInterval    = 250 * time.Millisecond
)

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

type toast struct {
	kind    toastKind
	message string
	start   time.Time
}

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

func (t toast) duration() time.Duration {
	if t.kind == toastError {
		return errorToastDuration
	}
	return successToastDuration
}

func (t toast) active() bool {
	return t.activeAt(time.Now())
}

func (t toast) activeAt(now time.Time) bool {
	return t.message != "" && now.Sub(t.start) < t.duration()
}

func (m *App) showToast(kind toastKind, message string) tea.Cmd {
	m.toast = toast{kind: kind, message: message, start: time.Now()}
	return scheduleToastTick()
}

// renderToast returns the toast box with a countdown, or "" when none is due.
func (m *App) renderToast(now time.Time) string {
	if !m.toast.activeAt(now) {
		return ""
	}
	remaining := max(int((m.toast.duration()-now.Sub(m.toast.start)).Seconds()+0.5), 0)

	title := "✔ Done"
	style := styleSuccessToast()
	if m.toast.kind == toastError {
		title = "⚠ Error"
		style = styleErrorToast()
	}

	msg := m.toast.message
	if limit := max(m.width/2, 30); lipgloss.Width(msg) > limit {
		msg = truncate(msg, limit)
	}
	countdown := fmt.Sprintf("[%ds]", remaining)
	width := max(lipgloss.Width(msg), lipgloss.Width(title), 24)
	pad := max(width-len(countdown), 0)

	content := title + "\n" + msg + "\n" + strings.Repeat(" ", pad) + countdown
	return style.Render(content)
}
