package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/lanes/internal/tui/theme"
)

func useTrueColor(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestRenderGridClipColors(t *testing.T) {
	useTrueColor(t)

	colors := theme.ClipColors{Bg: "#111111", Handle: "#222222", Selected: "#333333", Text: "#ffffff"}
	tests := []struct {
		name     string
		selected bool
		want     string
		absent   string
	}{
		{name: "body", want: "48;2;17;17;17", absent: "48;2;51;51;51"},
		{name: "selected", selected: true, want: "48;2;51;51;51", absent: "48;2;17;17;17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderGrid(GridState{
				Width: 10, Height: 2,
				DayWidth: 10, TrackHeight: 2,
				Days: testDays(1), Tracks: 1,
				Clips: []ClipBox{{X0: 1, Y0: 0, X1: 8, Y1: 2, Label: "x", Colors: colors, Selected: tt.selected}},
			})
			if !strings.Contains(out, tt.want) {
				t.Fatalf("expected %q in output %q", tt.want, out)
			}
			if strings.Contains(out, tt.absent) {
				t.Fatalf("unexpected %q in output", tt.absent)
			}
			if !strings.Contains(out, "48;2;34;34;34") {
				t.Fatalf("expected handle color in output")
			}
		})
	}
}

func TestRenderGridWeekendShading(t *testing.T) {
	useTrueColor(t)

	// Five weekdays, then Saturday.
	out := RenderGrid(GridState{
		Width: 2, Height: 1,
		Left:     10,
		DayWidth: 2, TrackHeight: 1,
		Days: testDays(6), Tracks: 1,
		Colors: GridColors{Bg: "#000000", WeekendBg: "#0a0a0a"},
	})
	if !strings.Contains(out, "48;2;10;10;10") {
		t.Fatalf("expected weekend background in %q", out)
	}
}
