package stats

import "testing"

func TestFormatMetricsAlignsValuesRight(t *testing.T) {
	lines := formatMetrics([]metric{
		{"Score", "245"},
		{"Accuracy", "80%"},
		{"WPM", "7"},
	})
	want := []string{
		"Score    245",
		"Accuracy 80%",
		"WPM        7",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFormatMetricsWideRunes(t *testing.T) {
	lines := formatMetrics([]metric{
		{"총점", "5"},
		{"WPM", "12"},
	})
	if lines[0] != "총점  5" {
		t.Fatalf("unexpected line: %q", lines[0])
	}
	if lines[1] != "WPM  12" {
		t.Fatalf("unexpected line: %q", lines[1])
	}
}

func TestFormatMetricsEmpty(t *testing.T) {
	if lines := formatMetrics(nil); len(lines) != 0 {
		t.Fatalf("expected no lines, got %v", lines)
	}
}
