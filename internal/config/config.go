// Package config provides YAML-based configuration loading for the quiz:
// fade timing, round rules, plausibility thresholds, the weather stub and
// the question table.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/weatherwhether/internal/quiz"
)

// Config contains all tunable settings.
type Config struct {
	Fade       FadeConfig      `yaml:"fade"`
	Rounds     quiz.Rules      `yaml:"rounds"`
	Thresholds quiz.Thresholds `yaml:"thresholds"`
	Weather    WeatherConfig   `yaml:"weather"`
	Questions  []quiz.Question `yaml:"questions"`
}

// FadeConfig defines the scene cross-fade.
type FadeConfig struct {
	Step    int `yaml:"step"`    // Alpha change per tick
	Ceiling int `yaml:"ceiling"` // Alpha at which scenes swap (max 255)
	HoldMS  int `yaml:"hold_ms"` // Pause at full opacity, in milliseconds
}

// Hold returns the pause at full opacity as a duration.
func (f FadeConfig) Hold() time.Duration {
	return time.Duration(f.HoldMS) * time.Millisecond
}

// WeatherConfig defines the offline weather source.
type WeatherConfig struct {
	Base float64 `yaml:"base"` // Midpoint of the generated week
}

// Rules returns the round rules with thresholds attached.
func (c Config) Rules() quiz.Rules {
	r := c.Rounds
	r.Thresholds = c.Thresholds
	return r
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	if c.Fade.Step <= 0 {
		return fmt.Errorf("config: fade.step must be positive, got %d", c.Fade.Step)
	}
	if c.Fade.Ceiling <= 0 || c.Fade.Ceiling > 255 {
		return fmt.Errorf("config: fade.ceiling must be in 1..255, got %d", c.Fade.Ceiling)
	}
	if c.Fade.HoldMS < 0 {
		return fmt.Errorf("config: fade.hold_ms must not be negative, got %d", c.Fade.HoldMS)
	}
	if c.Rounds.Lives < 1 {
		return fmt.Errorf("config: rounds.lives must be at least 1, got %d", c.Rounds.Lives)
	}
	if c.Rounds.NearDistance < 0 {
		return fmt.Errorf("config: rounds.near_distance must not be negative, got %d", c.Rounds.NearDistance)
	}
	th := c.Thresholds
	if th.Absolute <= 0 || th.Frost < -th.Absolute || th.Ashes > th.Absolute || th.Frost >= th.Ashes {
		return fmt.Errorf("config: thresholds must satisfy -absolute <= frost < ashes <= absolute, got %+v", th)
	}
	if err := quiz.ValidateQuestions(c.Questions); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Rounds.Rounds < 1 || c.Rounds.Rounds > len(c.Questions) {
		return fmt.Errorf("config: rounds.count must be in 1..%d, got %d", len(c.Questions), c.Rounds.Rounds)
	}
	return nil
}
