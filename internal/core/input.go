package core

// Action represents a semantic input, abstracted from physical key presses.
// Scenes work with these intents rather than raw terminal keys.
type Action int

const (
	ActionNone      Action = iota
	ActionDigit            // 0-9 - append a digit to the guess
	ActionMinus            // - - leading sign of the guess
	ActionBackspace        // Backspace - remove the last guess character
	ActionSubmit           // Enter - submit the guess
	ActionStart            // P - start a new game from the menu
	ActionReturn           // Q - return to the menu from an ending
	ActionQuit             // Ctrl+C, Esc - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDigit:
		return "Digit"
	case ActionMinus:
		return "Minus"
	case ActionBackspace:
		return "Backspace"
	case ActionSubmit:
		return "Submit"
	case ActionStart:
		return "Start"
	case ActionReturn:
		return "Return"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is a single input delivered to the active scene.
type InputEvent struct {
	Action Action
	// Rune carries the typed character for ActionDigit.
	Rune rune
}

// NewInputEvent creates an event with no character payload.
func NewInputEvent(a Action) InputEvent {
	return InputEvent{Action: a}
}

// DigitEvent creates an ActionDigit event for r.
// Non-digit runes yield an ActionNone event.
func DigitEvent(r rune) InputEvent {
	if r < '0' || r > '9' {
		return InputEvent{Action: ActionNone}
	}
	return InputEvent{Action: ActionDigit, Rune: r}
}
