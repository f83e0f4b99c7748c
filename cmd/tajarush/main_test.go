package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/tajarush/internal/config"
	"github.com/verte-zerg/tajarush/internal/game"
	"github.com/verte-zerg/tajarush/internal/model"
	"github.com/verte-zerg/tajarush/internal/replay"
	"github.com/verte-zerg/tajarush/internal/wordbank"
)

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(model.Config{Lang: model.Korean, Duration: 60}); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	err := validateConfig(model.Config{Lang: model.English, Duration: 0})
	if err == nil || !strings.Contains(err.Error(), "--duration must be >= 1") {
		t.Fatalf("unexpected error: %v", err)
	}
	err = validateConfig(model.Config{Lang: "klingon", Duration: 7200})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "--lang must be one of") || !strings.Contains(err.Error(), "--duration must be <= 3600") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("template must be valid TOML: %v", err)
	}
	if cfg.Game.Lang != nil || cfg.Game.Duration != nil {
		t.Fatalf("template values must be commented out")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(&buf, "info")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	log.WithField("session", "abc").Info("session completed")
	if !strings.Contains(buf.String(), "session=abc") {
		t.Fatalf("expected structured field in output: %s", buf.String())
	}
	if _, err := newLogger(&buf, "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestWriteCatalog(t *testing.T) {
	var buf bytes.Buffer
	err := writeCatalog(&buf, wordbank.Default(), []model.Language{model.English}, []model.Difficulty{model.Easy})
	if err != nil {
		t.Fatalf("writeCatalog: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "english/easy: ") || !strings.Contains(out, "cat") {
		t.Fatalf("unexpected output: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected one line, got %q", out)
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	report := replay.Report{
		SessionID: "s1",
		Final:     game.State{Phase: game.PhaseRunning, TimeRemaining: 42, Score: 30, Word: "moon"},
	}
	if err := writeReport(&buf, model.English, report); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	if !strings.Contains(buf.String(), "42s left") || !strings.Contains(buf.String(), `"moon"`) {
		t.Fatalf("unexpected snapshot output: %s", buf.String())
	}

	buf.Reset()
	report.Ended = true
	report.Result = model.Result{TotalScore: 30, Accuracy: 100, Grade: model.GradePerfect}
	if err := writeReport(&buf, model.English, report); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	if !strings.Contains(buf.String(), "Perfect") {
		t.Fatalf("unexpected result output: %s", buf.String())
	}
}
