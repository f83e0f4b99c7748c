// Package replay runs scripted game sessions without a terminal UI.
package replay

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/tajarush/internal/model"
)

// CurrentWord submits whatever word is currently prompted.
const CurrentWord = "@word"

// Script is a YAML description of a session.
type Script struct {
	Lang     string `yaml:"lang"`
	Duration int    `yaml:"duration"`
	Seed     int64  `yaml:"seed"`
	Events   []Step `yaml:"events"`
}

// Step is one scripted action. Exactly one field is set.
type Step struct {
	Start  bool    `yaml:"start,omitempty"`
	Submit *string `yaml:"submit,omitempty"`
	Tick   int     `yaml:"tick,omitempty"`
}

// Parse decodes and validates a script.
func Parse(r io.Reader) (Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var sc Script
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, fmt.Errorf("script is empty")
		}
		return Script{}, fmt.Errorf("failed to decode script: %w", err)
	}
	if len(sc.Events) == 0 {
		return Script{}, fmt.Errorf("script has no events")
	}
	for i, step := range sc.Events {
		if err := step.validate(); err != nil {
			return Script{}, fmt.Errorf("event %d: %w", i+1, err)
		}
	}
	return sc, nil
}

func (s Step) validate() error {
	set := 0
	if s.Start {
		set++
	}
	if s.Submit != nil {
		set++
	}
	if s.Tick != 0 {
		set++
	}
	if set != 1 {
		return fmt.Errorf("expected exactly one of start, submit, tick")
	}
	if s.Tick < 0 {
		return fmt.Errorf("tick must be > 0")
	}
	return nil
}

// Overlay returns cfg with the values the script sets.
func (s Script) Overlay(cfg model.Config) (model.Config, error) {
	if s.Lang != "" {
		lang, err := model.ParseLanguage(s.Lang)
		if err != nil {
			return cfg, err
		}
		cfg.Lang = lang
	}
	if s.Duration != 0 {
		cfg.Duration = s.Duration
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	return cfg, nil
}
