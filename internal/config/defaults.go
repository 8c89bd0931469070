package config

import (
	_ "embed"

	"github.com/vovakirdan/weatherwhether/internal/quiz"
	"github.com/vovakirdan/weatherwhether/internal/weather"
)

//go:embed defaults/weatherwhether.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Fade: FadeConfig{
			Step:    15,
			Ceiling: 255,
			HoldMS:  500,
		},
		Rounds:     quiz.DefaultRules(),
		Thresholds: quiz.DefaultThresholds(),
		Weather: WeatherConfig{
			Base: weather.DefaultBase,
		},
		Questions: quiz.DefaultQuestions(),
	}
}
