package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boulder/internal/core"
)

// colorStyles holds one lipgloss style per core.Color.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Colors() {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into runs of one colour so a cave row of dirt costs a
// single escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, r := range colorRuns(s, y) {
			sb.WriteString(styleFor(r.color).Render(r.text))
		}
	}
	return sb.String()
}

type colorRun struct {
	color core.Color
	text  string
}

// colorRuns groups the cells of row y by colour, left to right.
func colorRuns(s *core.Screen, y int) []colorRun {
	var runs []colorRun
	var text strings.Builder
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if len(runs) == 0 || cell.Color != runs[len(runs)-1].color {
			if len(runs) > 0 {
				runs[len(runs)-1].text = text.String()
				text.Reset()
			}
			runs = append(runs, colorRun{color: cell.Color})
		}
		text.WriteRune(cell.Rune)
	}
	if len(runs) > 0 {
		runs[len(runs)-1].text = text.String()
	}
	return runs
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
