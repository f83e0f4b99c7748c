// Package tui provides the Bubble Tea game interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/tajarush/internal/game"
	"github.com/verte-zerg/tajarush/internal/model"
)

type screen int

const (
	screenHome screen = iota
	screenGame
	screenResults
)

// tickMsg is one clock second for the session that scheduled it.
type tickMsg struct {
	session string
}

// Model implements the Bubble Tea game UI.
type Model struct {
	config model.Config
	picker game.WordPicker
	log    logrus.FieldLogger
	keys   keyMap

	width  int
	height int

	screen       screen
	langIndex    int
	instructions bool

	session *game.Session
	input   textinput.Model
	bar     progress.Model
	help    help.Model

	result    model.Result
	hasResult bool
}

// NewModel constructs a game TUI model. cfg.Lang preselects the language on the home screen.
func NewModel(cfg model.Config, picker game.WordPicker, log logrus.FieldLogger) *Model {
	input := textinput.New()
	input.Placeholder = "type here..."
	input.CharLimit = 64
	input.Width = 24
	input.Prompt = "› "

	m := &Model{
		config: cfg,
		picker: picker,
		log:    log,
		keys:   defaultKeyMap(),
		input:  input,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:   help.New(),
	}
	for i, lang := range model.Languages {
		if lang == cfg.Lang {
			m.langIndex = i
		}
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = clamp(msg.Width/2, 10, 60)
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.abandon()
			return m, tea.Quit
		}
		switch m.screen {
		case screenHome:
			return m.updateHome(msg)
		case screenGame:
			return m.updateGame(msg)
		case screenResults:
			return m.updateResults(msg)
		}
	}
	return m, nil
}

func (m *Model) selectedLang() model.Language {
	return model.Languages[m.langIndex]
}

func (m *Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Switch):
		m.langIndex = (m.langIndex + 1) % len(model.Languages)
	case key.Matches(msg, m.keys.Help):
		m.instructions = !m.instructions
	case key.Matches(msg, m.keys.Confirm):
		return m, m.newSession()
	}
	return m, nil
}

func (m *Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.abandon()
		m.screen = screenHome
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		return m, m.submit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PlayAgain):
		return m, m.newSession()
	case key.Matches(msg, m.keys.Home):
		m.screen = screenHome
	case msg.String() == "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) newSession() tea.Cmd {
	cfg := m.config
	cfg.Lang = m.selectedLang()
	m.config = cfg
	m.hasResult = false
	m.result = model.Result{}
	engine := game.NewEngine(m.picker, cfg.Lang, cfg.Duration)
	m.session = game.NewSession(engine, m.complete)
	m.input.Reset()
	m.screen = screenGame
	m.log.WithFields(logrus.Fields{"session": m.session.ID, "lang": cfg.Lang}).Debug("session created")
	return m.input.Focus()
}

func (m *Model) submit() tea.Cmd {
	if m.session == nil {
		return nil
	}
	before := m.session.Snapshot()
	st := m.session.Submit(m.input.Value())
	m.input.Reset()
	if before.Phase == game.PhaseNotStarted && st.Started() {
		m.log.WithField("session", m.session.ID).Info("session started")
		return tickCmd(m.session.ID)
	}
	return nil
}

func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if m.session == nil || m.screen != screenGame || msg.session != m.session.ID {
		return m, nil
	}
	st := m.session.Tick()
	if st.Ended() {
		m.screen = screenResults
		m.input.Blur()
		return m, nil
	}
	return m, tickCmd(m.session.ID)
}

// complete is the session's completion callback.
func (m *Model) complete(res model.Result) {
	m.result = res
	m.hasResult = true
	m.log.WithFields(logrus.Fields{
		"session":  m.session.ID,
		"lang":     m.config.Lang,
		"score":    res.TotalScore,
		"accuracy": res.Accuracy,
		"wpm":      res.WordsPerMinute,
		"grade":    res.Grade,
	}).Info("session completed")
}

// abandon drops the running session so that pending ticks are ignored.
func (m *Model) abandon() {
	if m.session == nil {
		return
	}
	if st := m.session.Snapshot(); st.Started() {
		m.log.WithFields(logrus.Fields{"session": m.session.ID, "remaining": st.TimeRemaining}).Info("session abandoned")
	}
	m.session = nil
	m.input.Blur()
}

func tickCmd(session string) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{session: session}
	})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
