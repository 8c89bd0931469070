// weatherwhether is a terminal quiz: guess temperatures from this week's
// ranked forecast and keep your job as a weather presenter.
//
// Usage:
//
//	weatherwhether play        - Play the quiz in this terminal
//	weatherwhether serve       - Start SSH server for remote play
//	weatherwhether score       - Show the stored high score
//	weatherwhether questions   - List the active question table
//	weatherwhether config      - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Custom config YAML
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible question order
//	--db <path>     - Set database path (default: ~/.weatherwhether/scores.db)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/weatherwhether/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "weatherwhether",
	Short: "WeatherWhether - a weather presenter quiz for your terminal",
	Long: `WeatherWhether shows this week's temperatures ranked from coldest to
hottest and asks you to forecast within a range. Answer every question to
get hired; run out of lives and you are fired.

Available commands:
  play       - Play the quiz
  serve      - Start SSH server for remote play
  score      - Show the high score
  questions  - List the question table
  config     - Print the effective configuration

Examples:
  weatherwhether play
  weatherwhether play --seed 42 --log ./ww.log
  weatherwhether serve --ssh :2222
  weatherwhether score`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.weatherwhether/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the quiz configuration honoring --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("cannot load config: %w", err)
	}
	return cfg, nil
}

// newFileLogger returns a logger writing to path, or a discarding logger
// when path is empty. The returned closer must be called on exit.
func newFileLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "weatherwhether",
	})
	return logger, f, nil
}
