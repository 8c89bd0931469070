package scene

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/weatherwhether/internal/config"
	"github.com/vovakirdan/weatherwhether/internal/core"
	"github.com/vovakirdan/weatherwhether/internal/quiz"
	"github.com/vovakirdan/weatherwhether/internal/weather"
)

// GameID names the quiz in the score store.
const GameID = "weatherwhether"

// HighScores persists the single best score.
type HighScores interface {
	LoadHighScore() (int, error)
	// SaveHighScore stores candidate only if it strictly beats the stored
	// value and reports whether it did.
	SaveHighScore(candidate int) (bool, error)
}

// Options configures a Game.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Weather weather.Source // defaults to a stub around Config.Weather.Base
	Scores  HighScores     // nil disables persistence
	Logger  *log.Logger    // nil discards logs
	Rand    *rand.Rand     // defaults to one seeded from Runtime.Seed
}

// Game is the director: it owns the Manager and builds a fresh scene for
// every transition.
type Game struct {
	manager  *Manager
	cfg      config.Config
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	weather  weather.Source
	scores   HighScores
	logger   *log.Logger
	best     int
	quitting bool
}

// NewGame creates a game showing the menu.
func NewGame(opts Options) *Game {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Runtime.Seed))
	}
	if opts.Weather == nil {
		opts.Weather = weather.NewStub(opts.Config.Weather.Base)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	g := &Game{
		manager: NewManager(FadeOptions{
			Step:    opts.Config.Fade.Step,
			Ceiling: opts.Config.Fade.Ceiling,
			Hold:    opts.Config.Fade.Hold(),
		}),
		cfg:     opts.Config,
		runtime: opts.Runtime,
		rng:     opts.Rand,
		weather: opts.Weather,
		scores:  opts.Scores,
		logger:  opts.Logger,
	}
	g.manager.OnSwap(func(from, to Scene) {
		fromName := "none"
		if from != nil {
			fromName = from.Name()
		}
		g.logger.Debug("scene swapped", "from", fromName, "to", to.Name())
	})

	g.best = g.loadHighScore()
	g.manager.Set(newMenuScene(g))
	return g
}

// Manager returns the scene manager.
func (g *Game) Manager() *Manager {
	return g.manager
}

// Config returns the game configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// HandleInput routes ev to the manager. Quit is handled here in every phase.
func (g *Game) HandleInput(ev core.InputEvent) {
	if ev.Action == core.ActionQuit {
		g.quitting = true
		return
	}
	g.manager.HandleInput(ev)
}

// Update advances the manager by one tick.
func (g *Game) Update(dt time.Duration) {
	g.manager.Update(dt)
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	g.manager.Render(dst)
}

// Quitting reports whether the player asked to exit.
func (g *Game) Quitting() bool {
	return g.quitting
}

// ToMenu fades to a fresh menu.
func (g *Game) ToMenu() {
	g.manager.Request(newMenuScene(g))
}

// StartNewGame samples questions over this week's temperatures and fades to
// a fresh play scene. On error the current scene stays active.
func (g *Game) StartNewGame() error {
	week, err := g.weather.Week()
	if err != nil {
		g.logger.Error("weather source failed", "error", err)
		return fmt.Errorf("cannot fetch week: %w", err)
	}
	labels, err := quiz.Labels(week)
	if err != nil {
		g.logger.Error("invalid week", "error", err)
		return err
	}
	questions, err := quiz.Sample(g.rng, g.cfg.Questions, g.cfg.Rounds.Rounds)
	if err != nil {
		g.logger.Error("cannot sample questions", "error", err)
		return err
	}
	eval, err := quiz.NewEvaluator(labels, questions, g.cfg.Rules())
	if err != nil {
		g.logger.Error("cannot start game", "error", err)
		return err
	}

	ids := make([]int, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	g.logger.Info("game started", "questions", ids, "week", week)

	g.manager.Request(newPlayScene(g, eval))
	return nil
}

// Finish fades to the scene matching outcome.
func (g *Game) Finish(outcome quiz.Outcome) {
	g.logger.Info("game over", "outcome", outcome.Kind, "score", outcome.Score, "rounds", outcome.Rounds)
	if outcome.Kind == quiz.OutcomeSpecial {
		g.ToSpecial(outcome.Message)
		return
	}
	g.ToEnding(outcome)
}

// ToEnding fades to a fresh ending scene. The high score is updated when
// the scene is built.
func (g *Game) ToEnding(outcome quiz.Outcome) {
	g.manager.Request(newEndingScene(g, outcome))
}

// ToSpecial fades to a fresh special-event scene.
func (g *Game) ToSpecial(message string) {
	g.manager.Request(newSpecialScene(g, message))
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	return g.best
}

// RecordScore offers score to the store and returns the best known score.
// Persistence failures are logged and otherwise ignored.
func (g *Game) RecordScore(score int) int {
	if score > g.best {
		g.best = score
	}
	if g.scores == nil {
		return g.best
	}
	changed, err := g.scores.SaveHighScore(score)
	if err != nil {
		g.logger.Warn("could not save high score", "score", score, "error", err)
		return g.best
	}
	if changed {
		g.logger.Info("new high score", "score", score)
	}
	return g.best
}

// loadHighScore reads the stored high score, treating failures as zero.
func (g *Game) loadHighScore() int {
	if g.scores == nil {
		return 0
	}
	score, err := g.scores.LoadHighScore()
	if err != nil {
		g.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return score
}

// refreshHighScore reloads the stored high score, keeping the in-memory
// value when the store is behind or unavailable.
func (g *Game) refreshHighScore() int {
	if stored := g.loadHighScore(); stored > g.best {
		g.best = stored
	}
	return g.best
}
