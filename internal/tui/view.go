package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tajarush/internal/game"
	"github.com/verte-zerg/tajarush/internal/model"
)

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle    = pendingStyle.Underline(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	comboStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA940")).Bold(true)
	cardStyle      = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	activeCardStyle = cardStyle.BorderForeground(lipgloss.Color("#C89A3A"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	promptBoxStyle  = lipgloss.NewStyle().
			Padding(1, 4).
			Border(lipgloss.DoubleBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
)

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	var bindings []key.Binding
	switch m.screen {
	case screenGame:
		content = m.viewGame()
		bindings = []key.Binding{m.keys.Confirm, m.keys.Back, m.keys.Quit}
	case screenResults:
		content = m.viewResults()
		bindings = []key.Binding{m.keys.PlayAgain, m.keys.Home, m.keys.Quit}
	default:
		content = m.viewHome()
		bindings = []key.Binding{m.keys.Switch, m.keys.Confirm, m.keys.Help, m.keys.Quit}
	}
	footer := m.help.ShortHelpView(bindings)
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) viewHome() string {
	langs := make([]string, 0, len(model.Languages))
	for i, lang := range model.Languages {
		style := cardStyle
		if i == m.langIndex {
			style = activeCardStyle
		}
		langs = append(langs, style.Render(lang.Label()))
	}
	lines := []string{
		titleStyle.Render("한·영 타자연습"),
		mutedStyle.Render("재미있게 배우는 타자 연습 게임"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, langs...),
		"",
		mutedStyle.Render(fmt.Sprintf("선택된 언어: %s", m.selectedLang().Label())),
	}
	if m.instructions {
		lines = append(lines, "", instructions(m.config.Duration))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func instructions(duration int) string {
	if duration <= 0 {
		duration = game.DefaultSessionLength
	}
	rows := []string{
		fmt.Sprintf("Type the word shown and press enter. You have %d seconds.", duration),
		"Correct words score 10 / 20 / 30 points by difficulty.",
		"Every 3 in a row adds a 5 point combo bonus.",
		"A wrong word costs 5 points and resets the combo.",
		"Difficulty rises after 200 and 500 points.",
	}
	return footerStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) viewGame() string {
	if m.session == nil {
		return ""
	}
	st := m.session.Snapshot()
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard(fmt.Sprintf("%d", st.TimeRemaining), secondsLabel(st.Lang)),
		statCard(fmt.Sprintf("%d", st.Score), scoreLabel(st.Lang)),
		statCard(fmt.Sprintf("%d", st.Combo), comboLabel(st.Lang)),
		statCard(st.Difficulty.Label(st.Lang), difficultyLabel(st.Lang)),
	)
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s 타자연습", st.Lang.Label())),
		cards,
		m.bar.ViewAs(st.Progress()),
		"",
	}
	if !st.Started() {
		lines = append(lines,
			titleStyle.Render("준비되셨나요?"),
			mutedStyle.Render("Press enter to start"),
		)
		return lipgloss.JoinVertical(lipgloss.Center, lines...)
	}

	m.input.Width = clamp(runewidth.StringWidth(st.Word)+8, 16, 48)
	lines = append(lines,
		promptBoxStyle.Render(renderPrompt([]rune(st.Word), []rune(m.input.Value()))),
		"",
		m.input.View(),
	)
	if banner := comboBanner(st); banner != "" {
		lines = append(lines, "", banner)
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func comboBanner(st game.State) string {
	if st.Combo <= 0 {
		if st.Last == game.OutcomeMiss {
			return incorrectStyle.Render(fmt.Sprintf("✗ %+d", st.LastDelta))
		}
		return ""
	}
	text := fmt.Sprintf("🔥 %d in a row!", st.Combo)
	if st.Lang == model.Korean {
		text = fmt.Sprintf("🔥 %d 연속 성공!", st.Combo)
	}
	if st.ComboBonusActive() {
		if st.Lang == model.Korean {
			text += " 보너스 점수!"
		} else {
			text += " Bonus points!"
		}
	}
	return comboStyle.Render(text)
}

func statCard(value, label string) string {
	return cardStyle.Width(12).Align(lipgloss.Center).Render(cardValueStyle.Render(value) + "\n" + mutedStyle.Render(label))
}

func (m *Model) viewResults() string {
	if !m.hasResult {
		return ""
	}
	res := m.result
	lang := m.config.Lang
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard(fmt.Sprintf("%d", res.TotalScore), scoreLabel(lang)),
		statCard(fmt.Sprintf("%d%%", res.Accuracy), accuracyLabel(lang)),
		statCard(fmt.Sprintf("%d", res.WordsPerMinute), "WPM"),
	)
	gradeLine := titleStyle.Render(fmt.Sprintf("%s %s", res.Grade.Emoji(), res.Grade))
	if res.Grade.Celebrate() {
		gradeLine = "✨ " + gradeLine + " ✨"
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("게임 결과"),
		mutedStyle.Render("수고하셨습니다!"),
		"",
		cards,
		"",
		gradeLine,
		comboStyle.Render(res.Grade.Message(lang)),
	)
}

func secondsLabel(lang model.Language) string {
	if lang == model.Korean {
		return "초"
	}
	return "sec"
}

func scoreLabel(lang model.Language) string {
	if lang == model.Korean {
		return "점수"
	}
	return "score"
}

func comboLabel(lang model.Language) string {
	if lang == model.Korean {
		return "콤보"
	}
	return "combo"
}

func difficultyLabel(lang model.Language) string {
	if lang == model.Korean {
		return "난이도"
	}
	return "level"
}

func accuracyLabel(lang model.Language) string {
	if lang == model.Korean {
		return "정확도"
	}
	return "accuracy"
}
