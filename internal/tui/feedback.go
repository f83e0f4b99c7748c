package tui

import (
	"strings"
)

// renderPrompt styles the prompt word against what has been typed so far.
func renderPrompt(target, input []rune) string {
	var b strings.Builder
	for i, r := range target {
		style := pendingStyle
		if i < len(input) {
			if input[i] == r {
				style = correctStyle
			} else {
				style = incorrectStyle
			}
		} else if i == len(input) {
			style = cursorStyle
		}
		b.WriteString(style.Render(string(r)))
	}
	if len(input) > len(target) {
		b.WriteString(incorrectStyle.Render(strings.Repeat("•", len(input)-len(target))))
	}
	return b.String()
}
