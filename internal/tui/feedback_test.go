package tui

import "testing"

func TestRenderPromptCursor(t *testing.T) {
	got := renderPrompt([]rune("ab"), []rune("a"))
	want := correctStyle.Render("a") + cursorStyle.Render("b")
	if got != want {
		t.Fatalf("unexpected prompt rendering: %q", got)
	}
}

func TestRenderPromptMistype(t *testing.T) {
	got := renderPrompt([]rune("ab"), []rune("ax"))
	want := correctStyle.Render("a") + incorrectStyle.Render("b")
	if got != want {
		t.Fatalf("unexpected prompt rendering: %q", got)
	}
}

func TestRenderPromptHangul(t *testing.T) {
	got := renderPrompt([]rune("사과"), nil)
	want := cursorStyle.Render("사") + pendingStyle.Render("과")
	if got != want {
		t.Fatalf("unexpected prompt rendering: %q", got)
	}
}

func TestRenderPromptOverflow(t *testing.T) {
	got := renderPrompt([]rune("a"), []rune("abc"))
	want := correctStyle.Render("a") + incorrectStyle.Render("••")
	if got != want {
		t.Fatalf("unexpected prompt rendering: %q", got)
	}
}
