// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// Language selects the word catalog for a session.
type Language string

const (
	Korean  Language = "korean"
	English Language = "english"
)

// Languages lists the supported languages in display order.
var Languages = []Language{Korean, English}

// ParseLanguage accepts the canonical names and the short codes ko/en.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "korean", "ko", "kr":
		return Korean, nil
	case "english", "en":
		return English, nil
	default:
		return "", fmt.Errorf("unknown language %q (available: korean, english)", s)
	}
}

// Label returns the name shown on the home screen.
func (l Language) Label() string {
	switch l {
	case Korean:
		return "한글"
	case English:
		return "영어"
	default:
		return string(l)
	}
}

// Difficulty is a word tier. The zero value is Easy.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists all tiers in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty parses a tier name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("unknown difficulty %q (available: easy, medium, hard)", s)
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// BaseScore is the score for a correct answer at this tier.
func (d Difficulty) BaseScore() int {
	switch d {
	case Medium:
		return 20
	case Hard:
		return 30
	default:
		return 10
	}
}

// Label returns the tier name in the session language.
func (d Difficulty) Label(lang Language) string {
	if lang == Korean {
		switch d {
		case Easy:
			return "쉬움"
		case Medium:
			return "보통"
		case Hard:
			return "어려움"
		}
	}
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return d.String()
}

// Grade is the final rating derived from accuracy.
type Grade string

const (
	GradeBad     Grade = "Bad"
	GradeSoso    Grade = "Soso"
	GradeWell    Grade = "Well"
	GradePerfect Grade = "Perfect"
)

// Emoji returns the decoration shown next to the grade.
func (g Grade) Emoji() string {
	switch g {
	case GradePerfect:
		return "🎉"
	case GradeWell:
		return "😊"
	case GradeSoso:
		return "🙂"
	default:
		return "😅"
	}
}

// Message returns an encouragement line for the grade.
func (g Grade) Message(lang Language) string {
	if lang == Korean {
		switch g {
		case GradePerfect:
			return "완벽해요! 최고의 실력이에요!"
		case GradeWell:
			return "훌륭해요! 정말 잘했어요!"
		case GradeSoso:
			return "좋아요! 계속 연습해보세요!"
		default:
			return "다음엔 더 잘할 수 있어요!"
		}
	}
	switch g {
	case GradePerfect:
		return "Perfect! Top-notch typing!"
	case GradeWell:
		return "Great job, really well done!"
	case GradeSoso:
		return "Nice! Keep practicing!"
	default:
		return "You'll do better next time!"
	}
}

// Celebrate reports whether the results screen should celebrate.
func (g Grade) Celebrate() bool {
	return g == GradeWell || g == GradePerfect
}

// Config defines game settings.
type Config struct {
	Lang     Language `validate:"required,oneof=korean english"`
	Duration int      `validate:"min=1,max=3600"`
	Seed     int64
}

// Result is the immutable snapshot produced when a session ends.
type Result struct {
	TotalScore     int
	Accuracy       int
	WordsPerMinute int
	Grade          Grade
	Correct        int
	Attempts       int
	// Elapsed is the number of seconds WordsPerMinute was measured over.
	Elapsed        int
}
