package quiz

// Class is the category a guess falls into.
type Class int

const (
	ClassAccept Class = iota
	ClassTooLow
	ClassTooHigh
	ClassFrost
	ClassAshes
	ClassBelowAbsolute
	ClassAboveAbsolute
)

// String returns a human-readable name for the class.
func (c Class) String() string {
	switch c {
	case ClassAccept:
		return "accept"
	case ClassTooLow:
		return "too-low"
	case ClassTooHigh:
		return "too-high"
	case ClassFrost:
		return "frost"
	case ClassAshes:
		return "ashes"
	case ClassBelowAbsolute:
		return "below-absolute"
	case ClassAboveAbsolute:
		return "above-absolute"
	default:
		return "unknown"
	}
}

// Special reports whether the class ends the game regardless of the round.
func (c Class) Special() bool {
	return c >= ClassFrost
}

// Message returns the special ending message for c, or "" for round classes.
func (c Class) Message() string {
	switch c {
	case ClassFrost:
		return MessageFrost
	case ClassAshes:
		return MessageAshes
	case ClassBelowAbsolute:
		return MessageBelowAbsolute
	case ClassAboveAbsolute:
		return MessageAboveAbsolute
	default:
		return ""
	}
}

// Hint is the directional clue shown after a miss.
type Hint string

const (
	HintNone    Hint = ""
	HintLow     Hint = "<"
	HintFarLow  Hint = "<<"
	HintHigh    Hint = ">"
	HintFarHigh Hint = ">>"
)

// Interval is an inclusive acceptance range with Low <= High.
type Interval struct {
	Low  int
	High int
}

// Contains reports whether v lies in the interval, ends included.
func (iv Interval) Contains(v int) bool {
	return iv.Low <= v && v <= iv.High
}

// Classification is the verdict for one guess.
type Classification struct {
	Class Class
	Hint  Hint
}

// Classify maps a guess to exactly one class. Plausibility thresholds are
// checked before the interval, so an absurd guess never counts as accepted.
func Classify(guess int, iv Interval, rules Rules) Classification {
	th := rules.Thresholds
	switch {
	case guess < -th.Absolute:
		return Classification{Class: ClassBelowAbsolute}
	case guess > th.Absolute:
		return Classification{Class: ClassAboveAbsolute}
	case guess <= th.Frost:
		return Classification{Class: ClassFrost}
	case guess > th.Ashes:
		return Classification{Class: ClassAshes}
	case iv.Contains(guess):
		return Classification{Class: ClassAccept}
	case guess < iv.Low:
		hint := HintLow
		if iv.Low-guess > rules.NearDistance {
			hint = HintFarLow
		}
		return Classification{Class: ClassTooLow, Hint: hint}
	default:
		hint := HintHigh
		if guess-iv.High > rules.NearDistance {
			hint = HintFarHigh
		}
		return Classification{Class: ClassTooHigh, Hint: hint}
	}
}

// Bounds computes the acceptance interval of q from the ranked week.
// Temperatures are truncated to whole degrees and swapped if out of order.
func Bounds(labels RankedLabels, q Question) (Interval, error) {
	lowV, ok := labels.Value(q.Low)
	if !ok {
		return Interval{}, unknownLabel(q, q.Low)
	}
	highV, ok := labels.Value(q.High)
	if !ok {
		return Interval{}, unknownLabel(q, q.High)
	}
	low, high := int(lowV), int(highV)
	if low > high {
		low, high = high, low
	}
	return Interval{Low: low, High: high}, nil
}
