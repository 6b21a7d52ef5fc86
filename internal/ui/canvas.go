package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas composes rendered blocks into a cell buffer so modals and toasts
// can be drawn over the main frame without disturbing its layout.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

// NewCanvas allocates a canvas of at least one cell in each dimension.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// DrawStringAt writes a block with its top-left corner at x,y.
func (c *Canvas) DrawStringAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	c.writer.PrintCropAt(x, y, strings.ReplaceAll(content, "\n", "\r\n"), "")
}

// centerOverlay centres a block between the top and bottom margins.
func (c *Canvas) centerOverlay(overlay string, topMargin, bottomMargin int) {
	lines := splitLines(overlay)
	if len(lines) == 0 || c == nil {
		return
	}
	topMargin = max(topMargin, 0)
	bottomMargin = max(bottomMargin, 0)

	overlayHeight := len(lines)
	overlayWidth := min(maxLineWidth(lines), c.width)

	usable := max(c.height-topMargin-bottomMargin, overlayHeight)
	y := topMargin + (usable-overlayHeight)/2
	y = min(y, c.height-bottomMargin-overlayHeight)
	y = max(y, topMargin, 0)

	x := max((c.width-overlayWidth)/2, 0)
	c.drawLines(x, y, lines)
}

// bottomRightOverlay anchors a block to the bottom-right corner.
func (c *Canvas) bottomRightOverlay(overlay string, padding int) {
	lines := splitLines(overlay)
	if len(lines) == 0 || c == nil {
		return
	}
	padding = max(padding, 0)
	y := max(c.height-len(lines)-padding, 0)
	x := max(c.width-maxLineWidth(lines)-padding, 0)
	c.drawLines(x, y, lines)
}

func (c *Canvas) drawLines(x, y int, lines []string) {
	for i, line := range lines {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Render flattens the canvas into a newline-delimited frame.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, lipgloss.Width(line))
	}
	return widest
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// padRight pads s with spaces up to width cells.
func padRight(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
