// Package game implements the typing session state machine.
//
// Engine.Apply is a pure transition: it takes a State value and an Event and
// returns the next State, plus the Result on the single transition into
// PhaseEnded. Session wraps it for callers that want to own one mutable
// session and receive a completion callback.
package game

import "github.com/verte-zerg/tajarush/internal/model"

// DefaultSessionLength is the countdown length in seconds.
const DefaultSessionLength = 60

const (
	missPenalty    = 5
	comboStep      = 3
	comboStepBonus = 5
	mediumAfter    = 200
	hardAfter      = 500
)

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome describes the last scored submission.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeHit
	OutcomeMiss
)

// State is a snapshot of one session. It is a plain value; copies are independent.
type State struct {
	Lang          model.Language
	Word          string
	Difficulty    model.Difficulty
	Score         int
	Combo         int
	Length        int
	TimeRemaining int
	Elapsed       int
	Correct       int
	Attempts      int
	Phase         Phase

	// Last and LastDelta describe the most recent submission for feedback.
	Last      Outcome
	LastDelta int

	// Result is valid once Phase is PhaseEnded.
	Result model.Result
}

// Started reports whether the session is running.
func (s State) Started() bool {
	return s.Phase == PhaseRunning
}

// Ended reports whether the session reached its terminal phase.
func (s State) Ended() bool {
	return s.Phase == PhaseEnded
}

// Progress returns the elapsed fraction of the countdown in [0, 1].
func (s State) Progress() float64 {
	if s.Length <= 0 {
		return 0
	}
	p := float64(s.Length-s.TimeRemaining) / float64(s.Length)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// ComboBonusActive reports whether the next correct answer earns a combo bonus.
func (s State) ComboBonusActive() bool {
	return s.Combo >= comboStep
}

// Event is an input to Engine.Apply.
type Event interface {
	event()
}

// Start begins the countdown.
type Start struct{}

// Submit carries the raw text entered by the player.
type Submit struct {
	Input string
}

// Tick marks one elapsed second.
type Tick struct{}

func (Start) event()  {}
func (Submit) event() {}
func (Tick) event()   {}
