// Package stats contains grading, session metrics and result reporting.
package stats

import (
	"math"

	"github.com/verte-zerg/tajarush/internal/model"
)

// Grade maps an accuracy percentage to its band.
func Grade(accuracy int) model.Grade {
	switch {
	case accuracy >= 76:
		return model.GradePerfect
	case accuracy >= 51:
		return model.GradeWell
	case accuracy >= 26:
		return model.GradeSoso
	default:
		return model.GradeBad
	}
}

// Accuracy returns the rounded percentage of correct attempts, 0 when nothing was attempted.
func Accuracy(correct, attempts int) int {
	if attempts <= 0 {
		return 0
	}
	acc := int(math.Round(float64(correct) / float64(attempts) * 100))
	if acc < 0 {
		return 0
	}
	if acc > 100 {
		return 100
	}
	return acc
}

// WordsPerMinute normalizes correct answers to a per-minute rate.
// A non-positive elapsed time falls back to sessionSeconds.
func WordsPerMinute(correct, elapsedSeconds, sessionSeconds int) int {
	if elapsedSeconds <= 0 {
		elapsedSeconds = sessionSeconds
	}
	if elapsedSeconds <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) * (60.0 / float64(elapsedSeconds))))
}

// BuildResult derives the end-of-session snapshot from raw counters.
func BuildResult(score, correct, attempts, elapsedSeconds, sessionSeconds int) model.Result {
	acc := Accuracy(correct, attempts)
	if elapsedSeconds <= 0 {
		elapsedSeconds = sessionSeconds
	}
	return model.Result{
		TotalScore:     score,
		Accuracy:       acc,
		WordsPerMinute: WordsPerMinute(correct, elapsedSeconds, sessionSeconds),
		Grade:          Grade(acc),
		Correct:        correct,
		Attempts:       attempts,
		Elapsed:        elapsedSeconds,
	}
}
