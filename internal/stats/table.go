package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// metric is one label/value line of the results table.
type metric struct {
	label, value string
}

// formatMetrics lays out labels flush left and values flush right,
// measuring cells in terminal columns so Hangul labels line up.
func formatMetrics(metrics []metric) []string {
	labelWidth, valueWidth := 0, 0
	for _, m := range metrics {
		labelWidth = max(labelWidth, runewidth.StringWidth(m.label))
		valueWidth = max(valueWidth, runewidth.StringWidth(m.value))
	}
	lines := make([]string, 0, len(metrics))
	for _, m := range metrics {
		var b strings.Builder
		b.WriteString(m.label)
		b.WriteString(pad(labelWidth - runewidth.StringWidth(m.label)))
		b.WriteByte(' ')
		b.WriteString(pad(valueWidth - runewidth.StringWidth(m.value)))
		b.WriteString(m.value)
		lines = append(lines, b.String())
	}
	return lines
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
