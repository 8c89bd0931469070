package quiz

import (
	"fmt"
	"math/rand"
)

// Question is one round template: a prompt and the two ranked labels whose
// temperatures bound the accepted answers.
type Question struct {
	ID   int    `yaml:"id"`
	Text string `yaml:"text"`
	Low  Label  `yaml:"low"`
	High Label  `yaml:"high"`
}

// DefaultQuestions returns the built-in question table.
func DefaultQuestions() []Question {
	return []Question{
		{ID: 1, Text: "It's warm out there.", Low: Normal1, High: Hotter},
		{ID: 2, Text: "It's cool out there.", Low: Colder, High: Normal2},
		{ID: 3, Text: "The world is boiling!", Low: Hotter, High: Hottest},
		{ID: 4, Text: "The world went cold!", Low: Coldest, High: Colder},
		{ID: 5, Text: "It's a comfortable weather.", Low: Normal1, High: Normal2},
	}
}

// ValidateQuestions checks that every question names known labels and that
// IDs are unique.
func ValidateQuestions(table []Question) error {
	if len(table) == 0 {
		return fmt.Errorf("%w: question table is empty", ErrInvalidInput)
	}
	seen := make(map[int]bool, len(table))
	for _, q := range table {
		if seen[q.ID] {
			return fmt.Errorf("%w: duplicate question id %d", ErrInvalidInput, q.ID)
		}
		seen[q.ID] = true
		if !q.Low.Valid() {
			return fmt.Errorf("%w: question %d: unknown label %q", ErrInvalidInput, q.ID, q.Low)
		}
		if !q.High.Valid() {
			return fmt.Errorf("%w: question %d: unknown label %q", ErrInvalidInput, q.ID, q.High)
		}
	}
	return nil
}

// Sample draws n questions from table uniformly without replacement.
// The sample order is the play order.
func Sample(rng *rand.Rand, table []Question, n int) ([]Question, error) {
	if n < 1 || n > len(table) {
		return nil, fmt.Errorf("%w: cannot sample %d of %d questions", ErrInvalidInput, n, len(table))
	}
	perm := rng.Perm(len(table))
	out := make([]Question, n)
	for i := 0; i < n; i++ {
		out[i] = table[perm[i]]
	}
	return out, nil
}
