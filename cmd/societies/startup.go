package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"societies/internal/ui/theme"
)

// startupStages is the number of Stage calls a normal launch makes.
const startupStages = 2

const logo = `
   █▀ █▀█ █▀▀ █ █▀▀ ▀█▀ █ █▀▀ █▀
   ▄█ █▄█ █▄▄ █ ██▄  █  █ ██▄ ▄█
`

type startupUpdate struct {
	detail string
	step   int
	done   bool
}

type updateMsg startupUpdate

// startupModel renders the logo, a spinner and a stage progress bar.
type startupModel struct {
	spinner  spinner.Model
	progress progress.Model

	detail string
	step   int

	ready bool
	done  bool

	updates chan startupUpdate
}

func newStartupModel() *startupModel {
	t := theme.Current()

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(t.Accent)

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(36),
		progress.WithoutPercentage(),
	)

	return &startupModel{
		spinner:  s,
		progress: p,
		detail:   "Starting",
		updates:  make(chan startupUpdate, 16),
	}
}

func (m *startupModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForUpdate())
}

func (m *startupModel) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		return updateMsg(<-m.updates)
	}
}

func (m *startupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		return m, nil

	case updateMsg:
		if msg.done {
			m.done = true
			return m, tea.Quit
		}
		m.detail = msg.detail
		m.step = msg.step
		percent := float64(m.step) / float64(startupStages)
		return m, tea.Batch(m.progress.SetPercent(min(percent, 1)), m.waitForUpdate())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		model, cmd := m.progress.Update(msg)
		m.progress = model.(progress.Model)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *startupModel) View() string {
	if !m.ready || m.done {
		return ""
	}
	t := theme.Current()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render(logo))
	b.WriteString("\n")
	b.WriteString(m.progress.View())
	b.WriteString("\n")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Text).Render(m.detail))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m *startupModel) sendUpdate(update startupUpdate) {
	select {
	case m.updates <- update:
	default:
	}
}

// StartupDisplay runs the startup animation inline while the catalog loads.
type StartupDisplay struct {
	program *tea.Program
	model   *startupModel
	out     io.Writer
	done    chan struct{}

	mu      sync.Mutex
	step    int
	stopped bool
}

func NewStartupDisplay(w io.Writer) *StartupDisplay {
	model := newStartupModel()
	program := tea.NewProgram(
		model,
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	d := &StartupDisplay{
		program: program,
		model:   model,
		out:     w,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(d.done)
	}()
	time.Sleep(10 * time.Millisecond)
	return d
}

// Stage advances the progress bar and shows detail next to the spinner.
func (d *StartupDisplay) Stage(detail string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.step++
	d.model.sendUpdate(startupUpdate{detail: detail, step: d.step})
}

// Stop ends the animation and clears its line. Safe to call twice.
func (d *StartupDisplay) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	d.mu.Unlock()

	d.model.sendUpdate(startupUpdate{done: true})

	select {
	case <-d.done:
	case <-time.After(500 * time.Millisecond):
		d.program.Kill()
	}

	fmt.Fprint(d.out, "\r\033[K")
}
