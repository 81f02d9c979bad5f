package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyWidth is the rendered width of one keypad button.
const KeyWidth = 7

// Key is one keypad button as drawn on screen.
type Key struct {
	Label  string
	Accent bool
}

// RenderKeypad draws rows of keys as a grid, highlighting the key at
// (row, col). Pass a negative row to highlight nothing.
func RenderKeypad(rows [][]Key, row, col int) string {
	lines := make([]string, 0, len(rows))
	for r, keys := range rows {
		cells := make([]string, 0, len(keys))
		for c, k := range keys {
			style := KeyStyle
			switch {
			case r == row && c == col:
				style = ActiveKeyStyle
			case k.Accent:
				style = AccentKeyStyle
			}
			cells = append(cells, style.Width(KeyWidth).Render(k.Label))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n\n")
}

// AlignRight pads s on the left so it ends at width. Text wider than width
// keeps its tail, which is the part being typed.
func AlignRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		r := []rune(s)
		return string(r[len(r)-width:])
	}
	return strings.Repeat(" ", width-w) + s
}
