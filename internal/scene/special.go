package scene

import (
	"strings"
	"time"

	"github.com/vovakirdan/weatherwhether/internal/core"
)

// specialScene ends the game after a physically implausible guess.
type specialScene struct {
	game    *Game
	message string
}

func newSpecialScene(g *Game, message string) *specialScene {
	return &specialScene{game: g, message: message}
}

func (s *specialScene) Name() string { return "special" }

func (s *specialScene) HandleInput(ev core.InputEvent) {
	if ev.Action == core.ActionReturn {
		s.game.ToMenu()
	}
}

func (s *specialScene) Update(time.Duration) {}

func (s *specialScene) Render(dst *core.Screen) {
	dst.DrawTextCenteredColor(dst.Height()/2, strings.ToUpper(s.message), core.ColorBrightWhite)
	dst.DrawTextCentered(dst.Height()-3, `Press "Q" to return.`)
}
