package game

import (
	"github.com/google/uuid"

	"github.com/verte-zerg/tajarush/internal/model"
)

// Session owns one mutable State driven by a single caller.
type Session struct {
	ID string

	engine     *Engine
	state      State
	onComplete func(model.Result)
	completed  bool
}

// NewSession creates a session in PhaseNotStarted. onComplete may be nil; it
// is called exactly once, when the countdown reaches zero.
func NewSession(engine *Engine, onComplete func(model.Result)) *Session {
	return &Session{
		ID:         uuid.NewString(),
		engine:     engine,
		state:      engine.Initial(),
		onComplete: onComplete,
	}
}

// Start begins the countdown. It is a no-op once started.
func (s *Session) Start() State {
	return s.apply(Start{})
}

// Submit evaluates input against the current word, or starts the session if it has not started.
func (s *Session) Submit(input string) State {
	return s.apply(Submit{Input: input})
}

// Tick advances the countdown by one second.
func (s *Session) Tick() State {
	return s.apply(Tick{})
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	return s.state
}

// Result returns the final result once the session has ended.
func (s *Session) Result() (model.Result, bool) {
	if !s.state.Ended() {
		return model.Result{}, false
	}
	return s.state.Result, true
}

func (s *Session) apply(ev Event) State {
	next, res := s.engine.Apply(s.state, ev)
	s.state = next
	if res != nil && !s.completed {
		s.completed = true
		if s.onComplete != nil {
			s.onComplete(*res)
		}
	}
	return s.state
}
