package scene

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/weatherwhether/internal/core"
	"github.com/vovakirdan/weatherwhether/internal/quiz"
)

const (
	maxInputLen   = 6 // sign plus five digits
	caretInterval = 500 * time.Millisecond
	inputHint     = "Type number, Enter to submit"
)

// playScene runs one game: it collects the typed guess and hands it to the
// evaluator.
type playScene struct {
	game    *Game
	eval    *quiz.Evaluator
	input   string
	elapsed time.Duration
}

func newPlayScene(g *Game, eval *quiz.Evaluator) *playScene {
	return &playScene{game: g, eval: eval}
}

func (s *playScene) Name() string { return "play" }

func (s *playScene) HandleInput(ev core.InputEvent) {
	switch ev.Action {
	case core.ActionDigit:
		if len(s.input) < maxInputLen {
			s.input += string(ev.Rune)
		}
	case core.ActionMinus:
		if s.input == "" {
			s.input = "-"
		}
	case core.ActionBackspace:
		if s.input != "" {
			s.input = s.input[:len(s.input)-1]
		}
	case core.ActionSubmit:
		s.submit()
	}
}

func (s *playScene) submit() {
	res := s.eval.SubmitInput(s.input)
	switch res.Verdict {
	case quiz.VerdictIgnored:
		return
	case quiz.VerdictAccepted, quiz.VerdictRejected:
		s.input = ""
	}
	if res.Outcome != nil {
		s.game.Finish(*res.Outcome)
	}
}

func (s *playScene) Update(dt time.Duration) {
	s.elapsed += dt
}

func (s *playScene) Render(dst *core.Screen) {
	q := s.eval.Question()

	dst.DrawTextColor(2, 1, fmt.Sprintf("Question %d of %d", s.eval.Index()+1, s.eval.Rounds()), core.ColorBrightYellow)
	dst.DrawTextRight(dst.Width()-2, 1, fmt.Sprintf("Best: %d", s.game.HighScore()), core.ColorGray)
	dst.DrawText(2, 2, q.Text)
	dst.DrawHLine(2, 3, max(0, dst.Width()-4), '─', core.ColorGray)

	// Week panel
	panel := core.NewRect(2, 4, 22, 10)
	dst.DrawBox(panel, core.ColorBlue)
	dst.DrawTextColor(panel.X+2, panel.Y, " This week ", core.ColorBrightBlue)
	for i, lv := range s.eval.Labels().OrderedDisplay() {
		c := core.ColorCyan
		if i < 2 {
			c = core.ColorOrange
		} else if i >= 4 {
			c = core.ColorBlue
		}
		line := fmt.Sprintf("%-8s %7s", lv.Name+":", formatTemp(lv.Value))
		dst.DrawTextColor(panel.X+2, panel.Y+2+i, line, c)
	}

	// Lives and hint
	lives := strings.Repeat("♥", s.eval.Lives()) + strings.Repeat("·", max(0, s.game.cfg.Rounds.Lives-s.eval.Lives()))
	dst.DrawText(panel.Right()+4, panel.Y+1, "Lives:")
	dst.DrawTextColor(panel.Right()+11, panel.Y+1, lives, core.ColorRed)
	dst.DrawText(panel.Right()+4, panel.Y+2, fmt.Sprintf("Score: %d", s.eval.Score()))

	if hint := s.eval.Hint(); hint != quiz.HintNone {
		dst.DrawText(panel.Right()+4, panel.Y+5, "Hint:")
		dst.DrawTextColor(panel.Right()+11, panel.Y+5, string(hint), core.ColorBrightYellow)
	}

	// Input line
	box := core.NewRect(2, panel.Bottom()+1, min(44, dst.Width()-4), 3)
	dst.DrawBox(box, core.ColorGray)
	if s.input == "" {
		dst.DrawTextColor(box.X+2, box.Y+1, inputHint, core.ColorGray)
	} else {
		text := "> " + s.input
		if (s.elapsed/caretInterval)%2 == 0 {
			text += "_"
		}
		dst.DrawTextColor(box.X+2, box.Y+1, text, core.ColorBrightWhite)
	}

}
