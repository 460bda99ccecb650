package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/color-guess/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.FillRect(core.NewRect(0, 1, 3, 1), "#ff0000")

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)

	if got, want := RenderScreen(s, r), "ab    \n      "; got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenTrueColor(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.FillRect(core.NewRect(0, 0, 2, 1), "#ff0000")
	s.DrawTextColor(2, 0, "ok", core.ColorCorrect)

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	out := RenderScreen(s, r)

	if !strings.Contains(out, "48;2;255;0;0") {
		t.Errorf("expected a red background sequence in %q", out)
	}
	if !strings.Contains(out, "38;2;95;215;95") {
		t.Errorf("expected a green foreground sequence in %q", out)
	}
	if !strings.Contains(out, "ok") {
		t.Errorf("text missing from %q", out)
	}
}
