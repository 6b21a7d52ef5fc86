package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	disclaimerTitle = "THIS IS NOT AN OFFICIAL SITE"
	disclaimerBody  = "This society list is not an official list. We are in no way " +
		"affiliated with any of the societies listed here, the University or " +
		"the Students' Union. We cannot guarantee the accuracy of the " +
		"information provided."
	disclaimerMaxWidth = 60
)

// renderDisclaimer builds the modal shown until the user acknowledges it.
func renderDisclaimer(screenWidth int) string {
	width := min(disclaimerMaxWidth, max(screenWidth-8, 20))
	body := wordwrap.String(disclaimerBody, width)
	button := styleButton().Render("Okay")
	hint := styleHelpFooter().Render("Enter to continue · q to quit")

	content := lipgloss.JoinVertical(lipgloss.Left,
		styleDisclaimerTitle().Render(disclaimerTitle),
		"",
		body,
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Right, button),
		hint,
	)
	return styleDisclaimer().Render(content)
}
