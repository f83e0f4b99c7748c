package stats

import (
	"testing"

	"github.com/verte-zerg/tajarush/internal/model"
)

func TestGradeBoundaries(t *testing.T) {
	cases := []struct {
		accuracy int
		want     model.Grade
	}{
		{0, model.GradeBad},
		{25, model.GradeBad},
		{26, model.GradeSoso},
		{50, model.GradeSoso},
		{51, model.GradeWell},
		{75, model.GradeWell},
		{76, model.GradePerfect},
		{100, model.GradePerfect},
	}
	for _, tc := range cases {
		if got := Grade(tc.accuracy); got != tc.want {
			t.Fatalf("Grade(%d) = %s, want %s", tc.accuracy, got, tc.want)
		}
	}
}

func TestGradeIsMonotonic(t *testing.T) {
	rank := map[model.Grade]int{
		model.GradeBad:     0,
		model.GradeSoso:    1,
		model.GradeWell:    2,
		model.GradePerfect: 3,
	}
	prev := -1
	for acc := 0; acc <= 100; acc++ {
		r := rank[Grade(acc)]
		if r < prev {
			t.Fatalf("grade decreased at accuracy %d", acc)
		}
		prev = r
	}
}

func TestAccuracy(t *testing.T) {
	cases := []struct {
		correct, attempts, want int
	}{
		{0, 0, 0},
		{8, 10, 80},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{5, 5, 100},
	}
	for _, tc := range cases {
		if got := Accuracy(tc.correct, tc.attempts); got != tc.want {
			t.Fatalf("Accuracy(%d, %d) = %d, want %d", tc.correct, tc.attempts, got, tc.want)
		}
	}
}

func TestWordsPerMinute(t *testing.T) {
	if got := WordsPerMinute(12, 60, 60); got != 12 {
		t.Fatalf("expected 12 wpm, got %d", got)
	}
	if got := WordsPerMinute(10, 30, 60); got != 20 {
		t.Fatalf("expected 20 wpm, got %d", got)
	}
	if got := WordsPerMinute(10, 0, 60); got != 10 {
		t.Fatalf("expected fallback to session length, got %d", got)
	}
	if got := WordsPerMinute(10, 0, 0); got != 0 {
		t.Fatalf("expected 0 with no time at all, got %d", got)
	}
}

func TestBuildResultGradesAccuracy(t *testing.T) {
	res := BuildResult(150, 8, 10, 59, 60)
	if res.Accuracy != 80 || res.Grade != model.GradePerfect {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.WordsPerMinute != 8 || res.TotalScore != 150 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
