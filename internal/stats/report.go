package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/tajarush/internal/model"
)

type resultLabels struct {
	title, score, accuracy, wpm, grade, words string
}

func labelsFor(lang model.Language) resultLabels {
	if lang == model.Korean {
		return resultLabels{
			title:    "게임 결과",
			score:    "총점",
			accuracy: "정확도",
			wpm:      "WPM",
			grade:    "등급",
			words:    "맞은 단어",
		}
	}
	return resultLabels{
		title:    "Results",
		score:    "Total score",
		accuracy: "Accuracy",
		wpm:      "WPM",
		grade:    "Grade",
		words:    "Correct words",
	}
}

// RenderResult prints the final results as an aligned table followed by the grade message.
func RenderResult(w io.Writer, lang model.Language, res model.Result) error {
	l := labelsFor(lang)
	if _, err := fmt.Fprintln(w, l.title); err != nil {
		return err
	}
	metrics := []metric{
		{l.score, fmt.Sprintf("%d", res.TotalScore)},
		{l.accuracy, fmt.Sprintf("%d%%", res.Accuracy)},
		{l.wpm, fmt.Sprintf("%d", res.WordsPerMinute)},
		{l.words, fmt.Sprintf("%d/%d", res.Correct, res.Attempts)},
		{l.grade, fmt.Sprintf("%s %s", res.Grade, res.Grade.Emoji())},
	}
	for _, line := range formatMetrics(metrics) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, res.Grade.Message(lang)); err != nil {
		return err
	}
	return nil
}
