package scene

import (
	"time"

	"github.com/vovakirdan/weatherwhether/internal/core"
)

// Phase is the state of the transition state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFadingOut
	PhaseHolding
	PhaseFadingIn
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFadingOut:
		return "fading-out"
	case PhaseHolding:
		return "holding"
	case PhaseFadingIn:
		return "fading-in"
	default:
		return "unknown"
	}
}

// FadeOptions configures the cross-fade.
type FadeOptions struct {
	Step    int           // Alpha change per Update
	Ceiling int           // Alpha at which the scenes swap, at most 255
	Hold    time.Duration // Pause at full opacity right after the swap
}

// DefaultFadeOptions returns the stock fade: 15 alpha per tick up to 255,
// then a half-second hold.
func DefaultFadeOptions() FadeOptions {
	return FadeOptions{Step: 15, Ceiling: 255, Hold: 500 * time.Millisecond}
}

// SwapFunc is called when the pending scene replaces the active one.
type SwapFunc func(from, to Scene)

// Manager owns the active scene and runs the fade transition.
//
//	idle --Request--> fading-out --alpha>=ceiling, swap--> holding
//	holding --hold elapsed--> fading-in --alpha<=0--> idle
//
// Input and Update reach the active scene only while idle. Request is valid
// in every phase and always restarts the fade toward the newest scene.
type Manager struct {
	current  Scene
	pending  Scene
	phase    Phase
	alpha    int
	holdLeft time.Duration
	opts     FadeOptions
	onSwap   SwapFunc
}

// NewManager creates a manager with no active scene.
func NewManager(opts FadeOptions) *Manager {
	if opts.Step <= 0 {
		opts.Step = 1
	}
	opts.Ceiling = core.Clamp(opts.Ceiling, 1, 255)
	return &Manager{opts: opts}
}

// OnSwap registers a callback invoked at every swap.
func (m *Manager) OnSwap(fn SwapFunc) {
	m.onSwap = fn
}

// Set installs s immediately, without a transition.
func (m *Manager) Set(s Scene) {
	m.current = s
	m.pending = nil
	m.phase = PhaseIdle
	m.alpha = 0
	m.holdLeft = 0
}

// Request starts a transition to next. Any pending scene is discarded and
// the fade restarts from zero, so only the latest request is ever shown.
func (m *Manager) Request(next Scene) {
	if next == nil {
		return
	}
	m.pending = next
	m.phase = PhaseFadingOut
	m.alpha = 0
	m.holdLeft = 0
}

// HandleInput forwards ev to the active scene when idle.
// Reports whether the event was delivered; input during a fade is dropped.
func (m *Manager) HandleInput(ev core.InputEvent) bool {
	if m.phase != PhaseIdle || m.current == nil {
		return false
	}
	m.current.HandleInput(ev)
	return true
}

// Update advances the transition by one tick, or the active scene when idle.
func (m *Manager) Update(dt time.Duration) {
	switch m.phase {
	case PhaseIdle:
		if m.current != nil {
			m.current.Update(dt)
		}

	case PhaseFadingOut:
		m.alpha += m.opts.Step
		if m.alpha >= m.opts.Ceiling {
			m.alpha = m.opts.Ceiling
			m.swap()
		}

	case PhaseHolding:
		m.holdLeft -= dt
		if m.holdLeft <= 0 {
			m.holdLeft = 0
			m.phase = PhaseFadingIn
		}

	case PhaseFadingIn:
		m.alpha -= m.opts.Step
		if m.alpha <= 0 {
			m.alpha = 0
			m.phase = PhaseIdle
		}
	}
}

// swap replaces the active scene with the pending one and starts the hold.
func (m *Manager) swap() {
	from := m.current
	m.current = m.pending
	m.pending = nil
	m.phase = PhaseHolding
	m.holdLeft = m.opts.Hold
	if m.onSwap != nil {
		m.onSwap(from, m.current)
	}
}

// Render draws the active scene with the fade mask on top.
func (m *Manager) Render(dst *core.Screen) {
	dst.Clear()
	if m.current != nil {
		m.current.Render(dst)
	}
	if m.alpha > 0 {
		dst.Mask(uint8(min(m.alpha, 255)))
	}
}

// Current returns the active scene.
func (m *Manager) Current() Scene {
	return m.current
}

// Phase returns the transition phase.
func (m *Manager) Phase() Phase {
	return m.phase
}

// Alpha returns the mask opacity, 0..ceiling.
func (m *Manager) Alpha() int {
	return m.alpha
}

// Transitioning reports whether a fade is in progress.
func (m *Manager) Transitioning() bool {
	return m.phase != PhaseIdle
}
