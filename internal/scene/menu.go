package scene

import (
	"fmt"
	"time"

	"github.com/vovakirdan/weatherwhether/internal/core"
)

// menuScene is the title screen. It only reacts to Start.
type menuScene struct {
	game      *Game
	highScore int
}

func newMenuScene(g *Game) *menuScene {
	return &menuScene{
		game:      g,
		highScore: g.refreshHighScore(),
	}
}

func (s *menuScene) Name() string { return "menu" }

func (s *menuScene) HandleInput(ev core.InputEvent) {
	if ev.Action == core.ActionStart {
		// Errors are logged by the game; the menu stays up.
		_ = s.game.StartNewGame()
	}
}

func (s *menuScene) Update(time.Duration) {}

func (s *menuScene) Render(dst *core.Screen) {
	top := max(1, dst.Height()/2-7)

	drawBanner(dst, top, "W E A T H E R   W H E T H E R", core.ColorBrightBlue)
	dst.DrawTextCenteredColor(top+4, "Forecast the week. Keep the job.", core.ColorGray)

	dst.DrawTextCenteredColor(top+7, fmt.Sprintf("High Score: %d", s.highScore), core.ColorBrightYellow)
	dst.DrawTextCentered(top+10, `Press "P" to Play`)

}
