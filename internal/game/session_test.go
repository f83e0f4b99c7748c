package game

import (
	"testing"

	"github.com/verte-zerg/tajarush/internal/model"
)

func TestSessionCompletionFiresOnce(t *testing.T) {
	var results []model.Result
	s := NewSession(NewEngine(&tierPicker{}, model.English, 3), func(r model.Result) {
		results = append(results, r)
	})
	if s.ID == "" {
		t.Fatalf("expected a session id")
	}
	if _, ok := s.Result(); ok {
		t.Fatalf("no result before the session ends")
	}
	s.Submit("")
	s.Submit("easy")
	s.Submit("wrong")
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	s.Submit("easy")
	if len(results) != 1 {
		t.Fatalf("expected one completion, got %d", len(results))
	}
	res, ok := s.Result()
	if !ok || res != results[0] {
		t.Fatalf("Result must match the completion payload")
	}
	if res.Accuracy != 50 || res.Grade != model.GradeSoso || res.TotalScore != 5 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSessionSnapshotIsACopy(t *testing.T) {
	s := NewSession(NewEngine(&tierPicker{}, model.English, 0), nil)
	s.Start()
	snap := s.Snapshot()
	snap.Score = 999
	if s.Snapshot().Score != 0 {
		t.Fatalf("mutating a snapshot must not affect the session")
	}
	got := s.Submit("easy")
	if got.Score != 10 || s.Snapshot().Score != 10 {
		t.Fatalf("expected score 10, got %d", got.Score)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	e := NewEngine(&tierPicker{}, model.English, 0)
	a := NewSession(e, nil)
	b := NewSession(e, nil)
	if a.ID == b.ID {
		t.Fatalf("expected unique session ids")
	}
}
