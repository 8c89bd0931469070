package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/weatherwhether/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightYellow: "11",
	core.ColorBrightBlue:   "12",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

// Styles holds one lipgloss style per color, bound to a renderer.
// SSH sessions need their own renderer so color detection follows the
// client terminal rather than the server's.
type Styles struct {
	base   lipgloss.Style
	colors map[core.Color]lipgloss.Style
	help   lipgloss.Style
}

// NewStyles creates styles for r. A nil renderer uses the default one.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := Styles{
		base:   r.NewStyle(),
		colors: make(map[core.Color]lipgloss.Style, len(palette)),
		help:   r.NewStyle().Foreground(lipgloss.Color("245")),
	}
	for c, code := range palette {
		s.colors[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return s
}

func (s Styles) style(c core.Color) lipgloss.Style {
	if st, ok := s.colors[c]; ok {
		return st
	}
	return s.base
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (s Styles) RenderScreen(scr *core.Screen) string {
	var sb strings.Builder
	sb.Grow(scr.Width()*scr.Height()*2 + scr.Height())

	for y := range scr.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < scr.Width() {
			startColor := scr.GetCell(x, y).Color

			var run strings.Builder
			for x < scr.Width() {
				cell := scr.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(s.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
