package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"societies/internal/ui/theme"
)

// Styles are built on demand so a theme switch takes effect on the next frame.

func styleAppHeader() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.TextEmphasized).
		Background(t.Primary).
		Bold(true).
		Padding(0, 1)
}

func styleStats() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleChip() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.BackgroundDarker).
		Padding(0, 1)
}

func styleChipSelected() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Primary).
		Bold(true).
		Padding(0, 1)
}

func styleChipClear() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Warning).
		Background(t.BackgroundSecondary).
		Padding(0, 1)
}

func styleRowSelected() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.TextEmphasized).
		Background(t.BackgroundSecondary).
		Bold(true)
}

func styleName() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text).Bold(true)
}

func styleStar() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent).Bold(true)
}

func styleAvatar() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Secondary).
		Bold(true)
}

func styleLink() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Secondary).Underline(true)
}

func styleField() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Secondary).Bold(true)
}

func styleDetailTitle() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.TextEmphasized).
		Background(t.BackgroundSecondary).
		Bold(true).
		Padding(0, 1)
}

func stylePane() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Current().BorderNormal)
}

func stylePaneFocused() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.Current().BorderFocused)
}

func styleDisclaimer() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Warning).
		Background(t.Background).
		Padding(1, 2)
}

func styleDisclaimerTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Warning).Bold(true)
}

func styleButton() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Primary).
		Bold(true).
		Padding(0, 2)
}

func styleHelpOverlay() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Background(t.Background).
		Padding(1, 2)
}

func styleHelpTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent).Bold(true)
}

func styleHelpDivider() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Primary)
}

func styleHelpSectionHeader() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Secondary).Bold(true)
}

func styleHelpKey() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Primary).Bold(true)
}

func styleHelpDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text)
}

func styleHelpFooter() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted).Italic(true)
}

func styleKeyPill() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Background(t.Primary).
		Foreground(t.Background).
		Bold(true)
}

func styleKeyDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleErrorToast() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error).
		Foreground(t.Text).
		Padding(0, 1)
}

func styleSuccessToast() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Success).
		Foreground(t.Text).
		Padding(0, 1)
}

// buildMarkdownRenderer returns a description renderer for the detail pane.
// "plain" skips glamour entirely and only wraps.
func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	switch style {
	case "", "rich":
		style = "dark"
	case "plain":
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
