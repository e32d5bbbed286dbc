package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruitfall/internal/core"
)

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// colorStyles maps core.Color to lipgloss styles (ANSI 256 palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          fg("196"),
	core.ColorGreen:        fg("46"),
	core.ColorYellow:       fg("226"),
	core.ColorBlue:         fg("33"),
	core.ColorMagenta:      fg("201"),
	core.ColorCyan:         fg("51"),
	core.ColorWhite:        fg("7"),
	core.ColorOrange:       fg("208"),
	core.ColorPink:         fg("218"),
	core.ColorPurple:       fg("129"),
	core.ColorBrown:        fg("130"),
	core.ColorGray:         fg("245"),
	core.ColorBrightWhite:  fg("15").Bold(true),
	core.ColorBrightYellow: fg("11").Bold(true),
	core.ColorIce:          fg("159"),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one style run to keep ANSI
// sequences short.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
