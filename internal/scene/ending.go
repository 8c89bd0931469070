package scene

import (
	"fmt"
	"time"

	"github.com/vovakirdan/weatherwhether/internal/core"
	"github.com/vovakirdan/weatherwhether/internal/quiz"
)

// endingScene shows whether the player was hired or fired.
type endingScene struct {
	game      *Game
	outcome   quiz.Outcome
	highScore int
}

// newEndingScene records the score as part of construction, so each
// game-end transition writes the high score exactly once.
func newEndingScene(g *Game, outcome quiz.Outcome) *endingScene {
	return &endingScene{
		game:      g,
		outcome:   outcome,
		highScore: g.RecordScore(outcome.Score),
	}
}

func (s *endingScene) Name() string { return "ending" }

func (s *endingScene) HandleInput(ev core.InputEvent) {
	if ev.Action == core.ActionReturn {
		s.game.ToMenu()
	}
}

func (s *endingScene) Update(time.Duration) {}

func (s *endingScene) Render(dst *core.Screen) {
	top := max(1, dst.Height()/2-6)

	title, c := "FIRED", core.ColorBrightRed
	if s.outcome.Hired() {
		title, c = "HIRED", core.ColorGreen
	}
	drawBanner(dst, top, title, c)

	dst.DrawTextCentered(top+5, fmt.Sprintf("Score: %d/%d", s.outcome.Score, s.outcome.Rounds))
	dst.DrawTextCenteredColor(top+7, fmt.Sprintf("High Score: %d", s.highScore), core.ColorBrightYellow)

	dst.DrawTextCentered(dst.Height()-3, `Press "Q" to return.`)
}
