package quiz

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLabelsPositional(t *testing.T) {
	week := []float64{12, 16, 20, 24, 28, 32}

	rl, err := Labels(week)
	if err != nil {
		t.Fatalf("Labels() failed: %v", err)
	}

	for i, l := range AllLabels() {
		v, ok := rl.Value(l)
		if !ok {
			t.Fatalf("Value(%q) not found", l)
		}
		if v != week[i] {
			t.Errorf("Value(%q) = %v, expected %v", l, v, week[i])
		}
	}
}

func TestLabelsWrongLength(t *testing.T) {
	for _, week := range [][]float64{nil, {1, 2, 3, 4, 5}, {1, 2, 3, 4, 5, 6, 7}} {
		_, err := Labels(week)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Labels(%v) error = %v, expected ErrInvalidInput", week, err)
		}
	}
}

func TestLabelsUnsortedIsPositional(t *testing.T) {
	// An unsorted week breaks the precondition but must still label by
	// position without failing.
	week := []float64{30, 16, 20, 24, 28, 2}

	rl, err := Labels(week)
	if err != nil {
		t.Fatalf("Labels() failed: %v", err)
	}
	if v, _ := rl.Value(Coldest); v != 30 {
		t.Errorf("coldest = %v, expected 30 (position 0)", v)
	}
	if v, _ := rl.Value(Hottest); v != 2 {
		t.Errorf("hottest = %v, expected 2 (position 5)", v)
	}
}

func TestLabelsDoesNotAliasInput(t *testing.T) {
	week := []float64{1, 2, 3, 4, 5, 6}
	rl, _ := Labels(week)
	week[0] = 100

	if v, _ := rl.Value(Coldest); v != 1 {
		t.Errorf("coldest = %v after mutating input, expected 1", v)
	}
}

func TestValueUnknownLabel(t *testing.T) {
	rl, _ := Labels([]float64{1, 2, 3, 4, 5, 6})
	if _, ok := rl.Value(Label("tepid")); ok {
		t.Error("Value of unknown label should report false")
	}
}

func TestOrderedDisplay(t *testing.T) {
	rl, _ := Labels([]float64{12, 16, 20, 24, 28, 32})

	want := []LabelValue{
		{Name: "Hottest", Value: 32},
		{Name: "Hotter", Value: 28},
		{Name: "Normal", Value: 24},
		{Name: "Normal", Value: 20},
		{Name: "Colder", Value: 16},
		{Name: "Coldest", Value: 12},
	}
	if diff := cmp.Diff(want, rl.OrderedDisplay()); diff != "" {
		t.Errorf("OrderedDisplay() mismatch (-want +got):\n%s", diff)
	}
}
