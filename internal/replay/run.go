package replay

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/tajarush/internal/game"
	"github.com/verte-zerg/tajarush/internal/model"
)

// Report is the outcome of a replay.
type Report struct {
	SessionID string
	Final     game.State
	Result    model.Result
	Ended     bool
}

// Run drives a fresh session through steps. It stops early once the session
// ends; remaining steps are skipped.
func Run(ctx context.Context, cfg model.Config, steps []Step, picker game.WordPicker, log logrus.FieldLogger) (Report, error) {
	var report Report
	sess := game.NewSession(game.NewEngine(picker, cfg.Lang, cfg.Duration), func(res model.Result) {
		report.Result = res
		report.Ended = true
	})
	entry := log.WithFields(logrus.Fields{"session": sess.ID, "lang": cfg.Lang})
	entry.WithField("duration", cfg.Duration).Debug("replay started")

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		if report.Ended {
			entry.WithField("skipped", len(steps)-i).Debug("session ended before script finished")
			break
		}
		switch {
		case step.Start:
			sess.Start()
		case step.Submit != nil:
			input := *step.Submit
			if input == CurrentWord {
				input = sess.Snapshot().Word
			}
			st := sess.Submit(input)
			entry.WithFields(logrus.Fields{"step": i + 1, "score": st.Score, "combo": st.Combo}).Debug("submitted")
		default:
			for n := 0; n < step.Tick && !report.Ended; n++ {
				sess.Tick()
			}
		}
	}

	report.SessionID = sess.ID
	report.Final = sess.Snapshot()
	if report.Ended {
		entry.WithFields(logrus.Fields{
			"score":    report.Result.TotalScore,
			"accuracy": report.Result.Accuracy,
			"wpm":      report.Result.WordsPerMinute,
			"grade":    report.Result.Grade,
		}).Info("session completed")
	}
	return report, nil
}
