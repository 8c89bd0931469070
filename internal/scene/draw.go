package scene

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/weatherwhether/internal/core"
)

// formatTemp renders a temperature, dropping the fraction for whole degrees.
func formatTemp(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d°C", int(v))
	}
	return fmt.Sprintf("%.1f°C", v)
}

// drawBanner draws text inside a box centered at row y.
func drawBanner(dst *core.Screen, y int, text string, c core.Color) {
	box := core.NewRect(0, y, dst.Width(), 3).Centered(utf8.RuneCountInString(text)+6, 3)
	dst.DrawBox(box, c)
	dst.DrawTextCenteredColor(y+1, text, c)
}
