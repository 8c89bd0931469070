package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/weatherwhether/internal/core"
	"github.com/vovakirdan/weatherwhether/internal/platform/tui"
	"github.com/vovakirdan/weatherwhether/internal/scene"
	"github.com/vovakirdan/weatherwhether/internal/storage"
)

var flagLogPath string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the quiz",
	Long: `Start the quiz in this terminal.

Controls:
  P          - Play (menu)
  0-9, -     - Type a temperature
  Backspace  - Delete
  Enter      - Submit
  Q          - Back to menu (after the game)
  Esc/Ctrl+C - Quit
  Ctrl+S     - Save a screenshot to ~/.weatherwhether/screenshots

Examples:
  weatherwhether play
  weatherwhether play --seed 7
  weatherwhether play --config ./my-weatherwhether.yaml --log ./ww.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newFileLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed

	// Open score storage; the quiz still works without it.
	var scores scene.HighScores = &storage.Memory{}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores kept in memory", "error", err)
	} else {
		defer store.Close()
		scores = store.ForGame(scene.GameID)
	}

	game := scene.NewGame(scene.Options{
		Config:  cfg,
		Runtime: rc,
		Scores:  scores,
		Logger:  logger,
	})

	if err := tui.Run(game, rc); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
