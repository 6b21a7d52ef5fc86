// Package theme holds the colour palettes the directory UI can switch between.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps semantic roles to adaptive colours so the UI never refers to a
// raw hex value.
type Theme struct {
	Name string

	Primary   lipgloss.AdaptiveColor // focused borders, header background
	Secondary lipgloss.AdaptiveColor // links, field labels
	Accent    lipgloss.AdaptiveColor // favourite star, titles

	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor

	Text           lipgloss.AdaptiveColor
	TextMuted      lipgloss.AdaptiveColor
	TextEmphasized lipgloss.AdaptiveColor

	Background          lipgloss.AdaptiveColor
	BackgroundSecondary lipgloss.AdaptiveColor // selected rows, overlays
	BackgroundDarker    lipgloss.AdaptiveColor // category chips

	BorderNormal  lipgloss.AdaptiveColor
	BorderFocused lipgloss.AdaptiveColor
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}
