// Package scene drives which screen is active. A Manager owns the active
// Scene and cross-fades between scenes; the Game director builds a fresh
// scene for every transition.
package scene

import (
	"time"

	"github.com/vovakirdan/weatherwhether/internal/core"
)

// Scene is one screen of the quiz.
// Scenes never block; transitions are requested through the Game.
type Scene interface {
	// Name identifies the scene in logs.
	Name() string

	// HandleInput reacts to one input event.
	HandleInput(ev core.InputEvent)

	// Update advances scene-local timers by dt.
	Update(dt time.Duration)

	// Render draws the scene into dst. The screen is pre-cleared.
	Render(dst *core.Screen)
}
