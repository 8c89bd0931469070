package quiz

import (
	"fmt"
	"strconv"
)

// OutcomeKind classifies how a game ended.
type OutcomeKind int

const (
	OutcomeHired OutcomeKind = iota
	OutcomeFired
	OutcomeSpecial
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeHired:
		return "hired"
	case OutcomeFired:
		return "fired"
	case OutcomeSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a game.
type Outcome struct {
	Kind    OutcomeKind
	Score   int
	Rounds  int    // rounds needed to be hired
	Message string // set for OutcomeSpecial
}

// Hired reports whether the player won.
func (o Outcome) Hired() bool {
	return o.Kind == OutcomeHired
}

// Verdict tells the caller what a submission did.
type Verdict int

const (
	VerdictIgnored Verdict = iota // nothing happened, input may be corrected
	VerdictAccepted
	VerdictRejected
	VerdictSpecial
)

// Result describes the effect of one submission.
type Result struct {
	Verdict        Verdict
	Classification Classification
	// Outcome is non-nil when the submission ended the game.
	Outcome *Outcome
}

// Evaluator holds the state of one game: the sampled questions, the current
// interval, lives, score and the last hint.
type Evaluator struct {
	rules     Rules
	labels    RankedLabels
	questions []Question
	index     int
	interval  Interval
	lives     int
	score     int
	hint      Hint
	outcome   *Outcome
}

// NewEvaluator starts a game over the given questions, played in order.
func NewEvaluator(labels RankedLabels, questions []Question, rules Rules) (*Evaluator, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions to play", ErrInvalidInput)
	}
	e := &Evaluator{
		rules:     rules,
		labels:    labels,
		questions: questions,
		lives:     rules.Lives,
	}
	for _, q := range questions {
		if _, err := Bounds(labels, q); err != nil {
			return nil, err
		}
	}
	e.recalc()
	return e, nil
}

// recalc recomputes the interval for the current question.
// Labels were validated by NewEvaluator, so Bounds cannot fail here.
func (e *Evaluator) recalc() {
	e.interval, _ = Bounds(e.labels, e.questions[e.index])
}

// SubmitInput evaluates a raw guess as typed by the player.
// Empty input, a lone sign and non-numeric text are ignored.
func (e *Evaluator) SubmitInput(raw string) Result {
	if raw == "" || raw == "-" {
		return Result{Verdict: VerdictIgnored}
	}
	guess, err := strconv.Atoi(raw)
	if err != nil {
		return Result{Verdict: VerdictIgnored}
	}
	return e.Submit(guess)
}

// Submit evaluates a guess against the current question.
// Once the game has an outcome, further guesses are ignored.
func (e *Evaluator) Submit(guess int) Result {
	if e.outcome != nil {
		return Result{Verdict: VerdictIgnored}
	}

	c := Classify(guess, e.interval, e.rules)
	res := Result{Classification: c}

	switch {
	case c.Class.Special():
		res.Verdict = VerdictSpecial
		e.finish(OutcomeSpecial, c.Class.Message())

	case c.Class == ClassAccept:
		res.Verdict = VerdictAccepted
		e.score++
		e.index++
		if e.index >= len(e.questions) {
			e.index = len(e.questions) - 1
			e.finish(OutcomeHired, "")
			break
		}
		e.lives = e.rules.Lives
		e.hint = HintNone
		e.recalc()

	default:
		res.Verdict = VerdictRejected
		e.hint = c.Hint
		e.lives--
		if e.lives <= 0 {
			e.lives = 0
			e.finish(OutcomeFired, "")
		}
	}

	res.Outcome = e.outcome
	return res
}

func (e *Evaluator) finish(kind OutcomeKind, msg string) {
	e.outcome = &Outcome{
		Kind:    kind,
		Score:   e.score,
		Rounds:  len(e.questions),
		Message: msg,
	}
}

// Question returns the question currently being played.
func (e *Evaluator) Question() Question {
	return e.questions[e.index]
}

// Index returns the zero-based position of the current question.
func (e *Evaluator) Index() int {
	return e.index
}

// Rounds returns the number of questions in the game.
func (e *Evaluator) Rounds() int {
	return len(e.questions)
}

// Interval returns the current acceptance interval.
func (e *Evaluator) Interval() Interval {
	return e.interval
}

// Lives returns the retries left in the current round.
func (e *Evaluator) Lives() int {
	return e.lives
}

// Score returns the number of rounds answered correctly.
func (e *Evaluator) Score() int {
	return e.score
}

// Hint returns the clue from the last miss in this round.
func (e *Evaluator) Hint() Hint {
	return e.hint
}

// Labels returns the ranked week the game is played on.
func (e *Evaluator) Labels() RankedLabels {
	return e.labels
}

// Outcome returns the game result, or nil while the game is running.
func (e *Evaluator) Outcome() *Outcome {
	return e.outcome
}

func unknownLabel(q Question, l Label) error {
	return fmt.Errorf("%w: question %d: unknown label %q", ErrInvalidInput, q.ID, l)
}
