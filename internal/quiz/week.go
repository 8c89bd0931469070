// Package quiz implements the temperature guessing rules: ranked week labels,
// the question table, and round evaluation. It has no rendering or I/O.
package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned for malformed week data, unknown labels or
// impossible sample sizes.
var ErrInvalidInput = errors.New("quiz: invalid input")

// WeekLength is the number of temperatures in a week.
const WeekLength = 6

// Label names one of the six ranked positions of a week.
type Label string

// Ranked labels, coldest first. The order matches week positions.
const (
	Coldest Label = "coldest"
	Colder  Label = "colder"
	Normal1 Label = "normal1"
	Normal2 Label = "normal2"
	Hotter  Label = "hotter"
	Hottest Label = "hottest"
)

// rankOrder maps week positions to labels.
var rankOrder = [WeekLength]Label{Coldest, Colder, Normal1, Normal2, Hotter, Hottest}

// displayNames are shown to the player; both middle ranks read "Normal".
var displayNames = map[Label]string{
	Coldest: "Coldest",
	Colder:  "Colder",
	Normal1: "Normal",
	Normal2: "Normal",
	Hotter:  "Hotter",
	Hottest: "Hottest",
}

// AllLabels returns the ranked labels in coldest-to-hottest order.
func AllLabels() []Label {
	out := make([]Label, WeekLength)
	copy(out, rankOrder[:])
	return out
}

// Valid reports whether l is one of the six ranked labels.
func (l Label) Valid() bool {
	_, ok := displayNames[l]
	return ok
}

// DisplayName returns the player-facing name of the label.
func (l Label) DisplayName() string {
	return displayNames[l]
}

// LabelValue pairs a display name with its temperature.
type LabelValue struct {
	Name  string
	Value float64
}

// RankedLabels maps each ranked label to a temperature of the week.
type RankedLabels struct {
	values [WeekLength]float64
}

// Labels assigns the six ranked labels to week by position.
// The week must already be sorted ascending; values are not compared, so an
// unsorted week is labeled by position anyway.
func Labels(week []float64) (RankedLabels, error) {
	if len(week) != WeekLength {
		return RankedLabels{}, fmt.Errorf("%w: week has %d temperatures, want %d", ErrInvalidInput, len(week), WeekLength)
	}
	var rl RankedLabels
	copy(rl.values[:], week)
	return rl, nil
}

// Value returns the temperature assigned to label.
func (rl RankedLabels) Value(label Label) (float64, bool) {
	for i, l := range rankOrder {
		if l == label {
			return rl.values[i], true
		}
	}
	return 0, false
}

// OrderedDisplay returns the week hottest-first for rendering.
func (rl RankedLabels) OrderedDisplay() []LabelValue {
	out := make([]LabelValue, 0, WeekLength)
	for i := WeekLength - 1; i >= 0; i-- {
		out = append(out, LabelValue{
			Name:  rankOrder[i].DisplayName(),
			Value: rl.values[i],
		})
	}
	return out
}
