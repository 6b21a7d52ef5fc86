package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func blankBase(width, height int) string {
	return lipgloss.NewStyle().Width(width).Height(height).Render("")
}

func TestCanvasNormalizesNewlines(t *testing.T) {
	canvas := NewCanvas(8, 4)
	canvas.DrawStringAt(0, 0, "A\r\nB")

	lines := strings.Split(canvas.Render(), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least 2 lines, got %d", len(lines))
	}
	if got := strings.TrimSpace(stripANSI(lines[0])); got != "A" {
		t.Fatalf("line 0 = %q, want A", got)
	}
	if got := strings.TrimSpace(stripANSI(lines[1])); got != "B" {
		t.Fatalf("line 1 = %q, want B", got)
	}
}

func TestCanvasCenterOverlay(t *testing.T) {
	const width, height = 20, 10
	canvas := NewCanvas(width, height)
	canvas.DrawStringAt(0, 0, blankBase(width, height))
	canvas.centerOverlay("AA\nBB", 1, 1)

	lines := strings.Split(canvas.Render(), "\n")
	// usable rows 1..8 hold a 2-row block starting at row 4, column 9.
	const row = 4
	if len(lines) <= row+1 {
		t.Fatalf("not enough lines rendered: %d", len(lines))
	}
	if idx := strings.Index(stripANSI(lines[row]), "AA"); idx != 9 {
		t.Fatalf("AA at column %d, want 9", idx)
	}
	if idx := strings.Index(stripANSI(lines[row+1]), "BB"); idx != 9 {
		t.Fatalf("BB at column %d, want 9", idx)
	}
}

func TestCanvasBottomRightOverlay(t *testing.T) {
	const width, height = 30, 6
	canvas := NewCanvas(width, height)
	canvas.DrawStringAt(0, 0, blankBase(width, height))
	canvas.bottomRightOverlay("ERR", 1)

	lines := strings.Split(canvas.Render(), "\n")
	row := height - 1 - 1
	idx := strings.Index(stripANSI(lines[row]), "ERR")
	if idx == -1 {
		t.Fatalf("toast missing from row %d: %q", row, stripANSI(lines[row]))
	}
	if idx != width-len("ERR")-1 {
		t.Fatalf("ERR at column %d, want %d", idx, width-len("ERR")-1)
	}
}

func TestCanvasToleratesDegenerateSizes(t *testing.T) {
	canvas := NewCanvas(0, -3)
	canvas.DrawStringAt(0, 0, "")
	canvas.centerOverlay("", 0, 0)
	if out := canvas.Render(); strings.Count(out, "\n") > 0 {
		t.Fatalf("1x1 canvas should render a single row, got %q", out)
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Robotics", 20, "Robotics"},
		{"Robotics", 5, "Robo…"},
		{"Robotics", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight must not cut, got %q", got)
	}
}

func TestWrapChips(t *testing.T) {
	chips := []string{"aaaa", "bbbb", "cccc"}
	if got := wrapChips(chips, 9); got != "aaaa bbbb\ncccc" {
		t.Fatalf("wrapChips = %q", got)
	}
	if got := wrapChips(chips, 100); got != "aaaa bbbb cccc" {
		t.Fatalf("wrapChips wide = %q", got)
	}
	if got := wrapChips(chips, 2); got != "aaaa\nbbbb\ncccc" {
		t.Fatalf("oversized chips get their own line, got %q", got)
	}
}
