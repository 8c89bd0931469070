package quiz

// Player-facing messages for special endings.
const (
	MessageFrost         = "THEN THE WORLD WAS COVERED IN FROST."
	MessageAshes         = "THEN THE WORLD WAS COVERED IN ASHES."
	MessageBelowAbsolute = "THEN TIME ITSELF STOPPED."
	MessageAboveAbsolute = "THEN THE SUN SWALLOWED THE WORLD."
)

// Thresholds are the plausibility limits checked before the round interval.
type Thresholds struct {
	// Absolute: guesses below -Absolute or above Absolute end the game at once.
	Absolute int `yaml:"absolute"`
	// Frost: guesses in [-Absolute, Frost] end the game in frost.
	Frost int `yaml:"frost"`
	// Ashes: guesses above Ashes end the game in ashes.
	Ashes int `yaml:"ashes"`
}

// Rules holds the tunable constants of a game.
type Rules struct {
	Rounds       int        `yaml:"count"`
	Lives        int        `yaml:"lives"`
	NearDistance int        `yaml:"near_distance"` // misses within this distance get a single arrow
	Thresholds   Thresholds `yaml:"-"`
}

// DefaultRules returns the stock game rules.
func DefaultRules() Rules {
	return Rules{
		Rounds:       4,
		Lives:        4,
		NearDistance: 2,
		Thresholds:   DefaultThresholds(),
	}
}

// DefaultThresholds returns the stock plausibility limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Absolute: 273,
		Frost:    -100,
		Ashes:    100,
	}
}
