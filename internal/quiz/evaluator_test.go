package quiz

import (
	"errors"
	"testing"
)

// testWeek puts the coldest..colder interval at [10, 18].
var testWeek = []float64{10, 18, 20, 24, 28, 32}

func newTestEvaluator(t *testing.T, questions []Question) *Evaluator {
	t.Helper()
	rl, err := Labels(testWeek)
	if err != nil {
		t.Fatalf("Labels() failed: %v", err)
	}
	e, err := NewEvaluator(rl, questions, DefaultRules())
	if err != nil {
		t.Fatalf("NewEvaluator() failed: %v", err)
	}
	return e
}

// fourQuestions intervals: [10, 18], [20, 24], [28, 32], [20, 28].
func fourQuestions() []Question {
	return []Question{
		{ID: 4, Text: "cold", Low: Coldest, High: Colder},
		{ID: 5, Text: "comfortable", Low: Normal1, High: Normal2},
		{ID: 3, Text: "boiling", Low: Hotter, High: Hottest},
		{ID: 1, Text: "warm", Low: Normal1, High: Hotter},
	}
}

func TestEvaluatorInitialState(t *testing.T) {
	e := newTestEvaluator(t, fourQuestions())

	if e.Interval() != (Interval{Low: 10, High: 18}) {
		t.Errorf("Interval() = %+v, expected [10, 18]", e.Interval())
	}
	if e.Lives() != 4 {
		t.Errorf("Lives() = %d, expected 4", e.Lives())
	}
	if e.Score() != 0 || e.Index() != 0 || e.Hint() != HintNone {
		t.Error("new evaluator should start at question 0 with no score or hint")
	}
	if e.Outcome() != nil {
		t.Error("new evaluator should have no outcome")
	}
	if e.Rounds() != 4 {
		t.Errorf("Rounds() = %d, expected 4", e.Rounds())
	}
}

func TestEvaluatorIgnoresEmptyInput(t *testing.T) {
	e := newTestEvaluator(t, fourQuestions())

	for _, raw := range []string{"", "-", "abc"} {
		res := e.SubmitInput(raw)
		if res.Verdict != VerdictIgnored {
			t.Errorf("SubmitInput(%q) verdict = %v, expected ignored", raw, res.Verdict)
		}
	}
	if e.Lives() != 4 || e.Score() != 0 {
		t.Error("ignored input must not change state")
	}
}

func TestEvaluatorRejectWithHint(t *testing.T) {
	e := newTestEvaluator(t, fourQuestions())

	res := e.SubmitInput("9")
	if res.Verdict != VerdictRejected {
		t.Fatalf("guess 9 verdict = %v, expected rejected", res.Verdict)
	}
	if e.Hint() != HintLow {
		t.Errorf("Hint() = %q, expected %q", e.Hint(), HintLow)
	}
	if e.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", e.Lives())
	}

	e.Submit(5)
	if e.Hint() != HintFarLow {
		t.Errorf("Hint() = %q, expected %q", e.Hint(), HintFarLow)
	}

	e.Submit(19)
	if e.Hint() != HintHigh {
		t.Errorf("Hint() = %q, expected %q", e.Hint(), HintHigh)
	}
	if e.Lives() != 1 {
		t.Errorf("Lives() = %d, expected 1", e.Lives())
	}
}

func TestEvaluatorAcceptAdvancesRound(t *testing.T) {
	e := newTestEvaluator(t, fourQuestions())

	e.Submit(30) // miss, sets hint and costs a life
	res := e.SubmitInput("10")
	if res.Verdict != VerdictAccepted {
		t.Fatalf("guess 10 verdict = %v, expected accepted", res.Verdict)
	}
	if res.Outcome != nil {
		t.Fatal("first accept must not end the game")
	}
	if e.Score() != 1 || e.Index() != 1 {
		t.Errorf("score=%d index=%d, expected 1 and 1", e.Score(), e.Index())
	}
	if e.Lives() != 4 {
		t.Errorf("Lives() = %d, expected reset to 4", e.Lives())
	}
	if e.Hint() != HintNone {
		t.Errorf("Hint() = %q, expected cleared", e.Hint())
	}
	if e.Interval() != (Interval{Low: 20, High: 24}) {
		t.Errorf("Interval() = %+v, expected [20, 24]", e.Interval())
	}
}

func TestEvaluatorHiredAfterAllRounds(t *testing.T) {
	e := newTestEvaluator(t, fourQuestions())

	var res Result
	for i, guess := range []int{15, 22, 30, 25} {
		res = e.Submit(guess)
		if res.Verdict != VerdictAccepted {
			t.Fatalf("round %d: verdict = %v, expected accepted", i, res.Verdict)
		}
		if i < 3 && res.Outcome != nil {
			t.Fatalf("round %d: game ended early with %v", i, res.Outcome.Kind)
		}
	}

	if res.Outcome == nil || res.Outcome.Kind != OutcomeHired {
		t.Fatalf("expected hired outcome, got %+v", res.Outcome)
	}
	if res.Outcome.Score != 4 || res.Outcome.Rounds != 4 {
		t.Errorf("outcome score=%d rounds=%d, expected 4/4", res.Outcome.Score, res.Outcome.Rounds)
	}
	if !res.Outcome.Hired() {
		t.Error("Hired() should be true")
	}
}

func TestEvaluatorFiredKeepsScore(t *testing.T) {
	e := newTestEvaluator(t, fourQuestions())

	e.Submit(12) // accept round 1
	var res Result
	for i := 0; i < 4; i++ {
		res = e.Submit(0)
	}

	if res.Outcome == nil || res.Outcome.Kind != OutcomeFired {
		t.Fatalf("expected fired outcome, got %+v", res.Outcome)
	}
	if res.Outcome.Score != 1 {
		t.Errorf("fired score = %d, expected 1", res.Outcome.Score)
	}
	if e.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", e.Lives())
	}
}

func TestEvaluatorSpecialEndings(t *testing.T) {
	tests := []struct {
		guess   int
		message string
	}{
		{-274, MessageBelowAbsolute},
		{274, MessageAboveAbsolute},
		{-150, MessageFrost},
		{-100, MessageFrost},
		{101, MessageAshes},
	}

	for _, tt := range tests {
		e := newTestEvaluator(t, fourQuestions())
		e.Submit(12)

		res := e.Submit(tt.guess)
		if res.Verdict != VerdictSpecial {
			t.Errorf("guess %d verdict = %v, expected special", tt.guess, res.Verdict)
			continue
		}
		if res.Outcome == nil || res.Outcome.Kind != OutcomeSpecial {
			t.Errorf("guess %d outcome = %+v, expected special", tt.guess, res.Outcome)
			continue
		}
		if res.Outcome.Message != tt.message {
			t.Errorf("guess %d message = %q, expected %q", tt.guess, res.Outcome.Message, tt.message)
		}
		if res.Outcome.Score != 1 {
			t.Errorf("guess %d score = %d, expected 1", tt.guess, res.Outcome.Score)
		}
	}
}

func TestEvaluatorIgnoresAfterOutcome(t *testing.T) {
	e := newTestEvaluator(t, fourQuestions())
	e.Submit(500)

	res := e.Submit(12)
	if res.Verdict != VerdictIgnored {
		t.Errorf("verdict after outcome = %v, expected ignored", res.Verdict)
	}
	if e.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", e.Score())
	}
}

func TestNewEvaluatorErrors(t *testing.T) {
	rl, _ := Labels(testWeek)

	if _, err := NewEvaluator(rl, nil, DefaultRules()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("no questions: error = %v, expected ErrInvalidInput", err)
	}

	bad := []Question{{ID: 9, Low: "tepid", High: Hottest}}
	if _, err := NewEvaluator(rl, bad, DefaultRules()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown label: error = %v, expected ErrInvalidInput", err)
	}
}
