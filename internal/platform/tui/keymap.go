package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/weatherwhether/internal/core"
)

// KeyMap defines the key bindings for the quiz.
type KeyMap struct {
	Digit     key.Binding
	Minus     key.Binding
	Backspace key.Binding
	Submit    key.Binding
	Start     key.Binding
	Return    key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "type"),
		),
		Minus: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "minus"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Start: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "play"),
		),
		Return: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// MapKey translates a key message to an input event.
// Unbound keys map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.InputEvent {
	switch {
	case key.Matches(msg, k.Quit):
		return core.NewInputEvent(core.ActionQuit)
	case key.Matches(msg, k.Digit):
		return core.DigitEvent(msg.Runes[0])
	case key.Matches(msg, k.Minus):
		return core.NewInputEvent(core.ActionMinus)
	case key.Matches(msg, k.Backspace):
		return core.NewInputEvent(core.ActionBackspace)
	case key.Matches(msg, k.Submit):
		return core.NewInputEvent(core.ActionSubmit)
	case key.Matches(msg, k.Start):
		return core.NewInputEvent(core.ActionStart)
	case key.Matches(msg, k.Return):
		return core.NewInputEvent(core.ActionReturn)
	}
	return core.NewInputEvent(core.ActionNone)
}

// SceneHelp is the subset of bindings shown in the footer for one scene.
type SceneHelp []key.Binding

// ShortHelp returns key bindings for the short help view.
func (h SceneHelp) ShortHelp() []key.Binding {
	return h
}

// FullHelp returns key bindings for the full help view.
func (h SceneHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}

// HelpFor returns the bindings relevant to the named scene.
func (k KeyMap) HelpFor(sceneName string) SceneHelp {
	switch sceneName {
	case "menu":
		return SceneHelp{k.Start, k.Quit}
	case "play":
		return SceneHelp{k.Digit, k.Minus, k.Backspace, k.Submit, k.Quit}
	case "ending", "special":
		return SceneHelp{k.Return, k.Quit}
	}
	return SceneHelp{k.Quit}
}
