package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestViewRendersEditor(t *testing.T) {
	c := seedClip(0, 0, 4, 12)
	m, _ := newTestModel(t, c)

	out := m.View()
	lines := strings.Split(out, "\n")
	if len(lines) != 40 {
		t.Fatalf("view has %d lines, want 40", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 120 {
			t.Fatalf("line %d width = %d, want 120", i, w)
		}
	}

	plain := ansi.Strip(out)
	for _, want := range []string{
		"lanes",
		"Mon 06 Jan 2025 → Sun 19 Jan 2025",
		"Video",
		"Audio",
		"Intro",
		"1 clip · 2 tracks · zoom 48×3",
		"? help  q quit",
	} {
		if !strings.Contains(plain, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestViewStatusDuringDrag(t *testing.T) {
	c := seedClip(0, 0, 4, 12)
	m, _ := newTestModel(t, c)

	m, _ = sendMouse(m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 34, 3))
	got := m.statusText()
	want := "Moving Intro · Mon 06 Jan 04:00 · 12h"
	if got != want {
		t.Fatalf("status = %q, want %q", got, want)
	}
}

func TestViewTooSmall(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	m = updated.(Model)

	if !strings.Contains(ansi.Strip(m.View()), "Terminal too small") {
		t.Fatalf("expected the too small message")
	}
}

func TestViewHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, "?")

	plain := ansi.Strip(m.View())
	for _, want := range []string{"Clips", "Tracks", "rename focused track"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("help overlay missing %q", want)
		}
	}
}

func TestViewPromptReplacesFooter(t *testing.T) {
	c := seedClip(0, 0, 4, 12)
	m, _ := newTestModel(t, c)
	m.timeline.Select(c.ID)
	m, _ = press(t, m, "r")

	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "Rename clip: ") {
		t.Fatalf("expected the rename prompt in the footer")
	}
	if strings.Contains(plain, "? help  q quit") {
		t.Fatalf("expected the key hint hidden while renaming")
	}
}
