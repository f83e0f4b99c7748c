package game

import (
	"strings"

	"github.com/verte-zerg/tajarush/internal/model"
	"github.com/verte-zerg/tajarush/internal/stats"
)

// WordPicker draws prompt words.
type WordPicker interface {
	Pick(lang model.Language, diff model.Difficulty) string
}

// Engine holds the fixed inputs of a session: language, length and word source.
type Engine struct {
	picker WordPicker
	lang   model.Language
	length int
}

// NewEngine returns an Engine. A non-positive length uses DefaultSessionLength.
func NewEngine(picker WordPicker, lang model.Language, length int) *Engine {
	if length <= 0 {
		length = DefaultSessionLength
	}
	return &Engine{picker: picker, lang: lang, length: length}
}

// Initial returns a fresh, not yet started state with a first word drawn.
func (e *Engine) Initial() State {
	return State{
		Lang:          e.lang,
		Word:          e.picker.Pick(e.lang, model.Easy),
		Difficulty:    model.Easy,
		Length:        e.length,
		TimeRemaining: e.length,
		Phase:         PhaseNotStarted,
	}
}

// Apply returns the state after ev. The result is non-nil only on the
// transition into PhaseEnded. Events that do not fit the current phase
// return s unchanged.
func (e *Engine) Apply(s State, ev Event) (State, *model.Result) {
	switch ev := ev.(type) {
	case Start:
		return e.start(s), nil
	case Submit:
		switch s.Phase {
		case PhaseNotStarted:
			return e.start(s), nil
		case PhaseRunning:
			return e.submit(s, ev.Input), nil
		}
		return s, nil
	case Tick:
		return e.tick(s)
	default:
		return s, nil
	}
}

func (e *Engine) start(s State) State {
	if s.Phase != PhaseNotStarted {
		return s
	}
	s.Phase = PhaseRunning
	s.Word = e.picker.Pick(s.Lang, s.Difficulty)
	return s
}

func (e *Engine) submit(s State, input string) State {
	s.Attempts++
	if strings.TrimSpace(input) == s.Word {
		gain := s.Difficulty.BaseScore() + (s.Combo/comboStep)*comboStepBonus
		before := s.Score
		s.Correct++
		s.Combo++
		s.Score += gain
		s.Difficulty = escalate(s.Difficulty, before)
		s.Last = OutcomeHit
		s.LastDelta = gain
	} else {
		before := s.Score
		s.Combo = 0
		s.Score -= missPenalty
		if s.Score < 0 {
			s.Score = 0
		}
		s.Last = OutcomeMiss
		s.LastDelta = s.Score - before
	}
	s.Word = e.picker.Pick(s.Lang, s.Difficulty)
	return s
}

// escalate promotes at most one tier, judged on the score before the current gain.
func escalate(d model.Difficulty, score int) model.Difficulty {
	switch {
	case d == model.Easy && score > mediumAfter:
		return model.Medium
	case d == model.Medium && score > hardAfter:
		return model.Hard
	default:
		return d
	}
}

func (e *Engine) tick(s State) (State, *model.Result) {
	if s.Phase != PhaseRunning {
		return s, nil
	}
	prev := s.TimeRemaining
	s.TimeRemaining--
	s.Elapsed++
	if s.TimeRemaining > 0 {
		return s, nil
	}
	s.TimeRemaining = 0
	s.Phase = PhaseEnded
	// The rate is measured up to the second before the clock hit zero;
	// a one-second session falls back to its length.
	s.Result = stats.BuildResult(s.Score, s.Correct, s.Attempts, s.Length-prev, s.Length)
	res := s.Result
	return s, &res
}
