package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestOverlayToggle(t *testing.T) {
	overlay := NewOverlayModel()
	if overlay.Active() {
		t.Fatalf("expected overlay to start inactive")
	}

	overlay.Toggle()
	if !overlay.Active() {
		t.Fatalf("expected overlay to be active after toggle")
	}

	overlay.Toggle()
	if overlay.Active() {
		t.Fatalf("expected overlay to be inactive after second toggle")
	}
}

func TestOverlayRenderInactiveReturnsBase(t *testing.T) {
	overlay := NewOverlayModel()
	base := "alpha\nbeta"
	got := overlay.Render(base, 10, 2, "content")
	if got != base {
		t.Fatalf("expected base content unchanged when inactive")
	}
}

func TestOverlayRenderCentersContent(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetBackground(lipgloss.Color("#0c0c0c"))
	overlay.Toggle()

	width := 30
	height := 12
	row := strings.Repeat(".", width)
	base := strings.Repeat(row+"\n", height-1) + row
	content := "KEYS\nq quit"
	got := overlay.Render(base, width, height, content)

	lines := strings.Split(got, "\n")
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d", height, len(lines))
	}

	// Two content lines plus one padding row above and below.
	boxH := 2 + 2*overlayPadY
	boxW := len("q quit") + 2*overlayPadX
	top := (height - boxH) / 2
	left := (width - boxW) / 2
	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(overlay.bgColor))).String()

	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Fatalf("line %d width = %d, want %d", i, w, width)
		}
		hasBg := strings.Contains(line, bgSeq)
		if i >= top && i < top+boxH {
			if !hasBg {
				t.Fatalf("expected overlay background on line %d", i)
			}
		} else if hasBg {
			t.Fatalf("expected no overlay background on line %d", i)
		}
	}

	first := ansi.Strip(lines[top+overlayPadY])
	want := strings.Repeat(".", left) + strings.Repeat(" ", overlayPadX) + "KEYS"
	if !strings.HasPrefix(first, want) {
		t.Fatalf("first content line = %q, want prefix %q", first, want)
	}
	if !strings.HasSuffix(first, strings.Repeat(".", width-left-boxW)) {
		t.Fatalf("first content line = %q, want base kept on the right", first)
	}
}

func TestOverlayRenderClampsToScreen(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.Toggle()

	content := strings.Repeat("x", 50) + "\n" + strings.Repeat("y\n", 20)
	got := overlay.Render("", 20, 6, content)

	lines := strings.Split(got, "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 20 {
			t.Fatalf("line %d width = %d, want 20", i, w)
		}
	}
	if !strings.Contains(ansi.Strip(lines[overlayPadY]), strings.Repeat("x", 20-2*overlayPadX)) {
		t.Fatalf("expected the wide line cut to the inner width")
	}
}

func TestOverlayRenderUsesBackgroundColor(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetBackground(lipgloss.Color("#123456"))
	overlay.Toggle()

	width := 20
	height := 6
	row := strings.Repeat(".", width)
	base := strings.Repeat(row+"\n", height-1) + row
	got := overlay.Render(base, width, height, "x")

	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(overlay.bgColor))).String()
	if !strings.Contains(got, bgSeq) {
		t.Fatalf("expected overlay background sequence in output")
	}
}
