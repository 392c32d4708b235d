package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lanes/internal/config"
	"github.com/javiermolinar/lanes/internal/dateutil"
	"github.com/javiermolinar/lanes/internal/timeline"
	"github.com/javiermolinar/lanes/internal/tui/commands"
)

// testStart is a Monday.
var testStart = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

type testClipboard struct {
	text string
}

func (c *testClipboard) write(text string) error {
	c.text = text
	return nil
}

// newTestModel builds a 120x40 editor over two weeks with a Video and an
// Audio track. Default zoom: 48 cells per day, 3 rows per track.
func newTestModel(t *testing.T, clips ...*timeline.Clip) (Model, *testClipboard) {
	t.Helper()
	cfg := config.Default()
	tracks := []timeline.Track{
		timeline.NewTrack("Video", "film", "#3949ab"),
		timeline.NewTrack("Audio", "music", "#00897b"),
	}
	tl := timeline.New(dateutil.DaySequence(testStart, 14), tracks, clips)

	cb := &testClipboard{}
	m := New(cfg, tl,
		WithClipboard(cb.write),
		WithNow(func() time.Time { return testStart }),
	)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), cb
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m, cmd
}

func seedClip(track, day int, hour, duration float64) *timeline.Clip {
	return &timeline.Clip{
		ID:            timeline.NewClipID(),
		Label:         "Intro",
		TrackIndex:    track,
		StartDay:      day,
		StartHour:     hour,
		DurationHours: duration,
		Color:         "#3949ab",
	}
}

func TestNewLaysOutPanes(t *testing.T) {
	m, _ := newTestModel(t)

	if got := m.main.ClientWidth(); got != 100 {
		t.Fatalf("main client width = %v, want 100", got)
	}
	if got := m.main.ScrollWidth(); got != 14*48 {
		t.Fatalf("main scroll width = %v, want %v", got, 14*48)
	}
	if got := m.sidebar.ClientWidth(); got != 20 {
		t.Fatalf("sidebar client width = %v, want 20", got)
	}
	if m.mode != ModeNormal {
		t.Fatalf("mode = %v, want normal", m.mode)
	}
}

func TestAddDuplicateDeleteClip(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "a")
	sel, ok := m.timeline.Selected()
	if !ok {
		t.Fatalf("expected the new clip to be selected")
	}
	if sel.TrackIndex != 0 || sel.StartDay != 0 || sel.StartHour != timeline.DefaultClipStartHour {
		t.Fatalf("new clip at track %d day %d hour %v", sel.TrackIndex, sel.StartDay, sel.StartHour)
	}
	if sel.Color != "#3949ab" {
		t.Fatalf("new clip color = %q, want track color", sel.Color)
	}
	if m.statusMsg != "Added New Clip" {
		t.Fatalf("status = %q", m.statusMsg)
	}

	m, _ = press(t, m, "d")
	dup, ok := m.timeline.Selected()
	if !ok || dup.ID == sel.ID {
		t.Fatalf("expected the duplicate to be selected")
	}
	if dup.Label != "New Clip (copy)" || dup.StartHour != 16 {
		t.Fatalf("duplicate = %q at hour %v", dup.Label, dup.StartHour)
	}

	m, _ = press(t, m, "x")
	if got := len(m.timeline.Clips()); got != 1 {
		t.Fatalf("clips after delete = %d, want 1", got)
	}
	if _, ok := m.timeline.Selected(); ok {
		t.Fatalf("expected no selection after delete")
	}
	if m.changes.count != 3 {
		t.Fatalf("change notifications = %d, want 3", m.changes.count)
	}

	m, _ = press(t, m, "x")
	if m.statusMsg != "No clip selected" {
		t.Fatalf("status = %q", m.statusMsg)
	}
}

func TestAddClipUsesScrollPosition(t *testing.T) {
	m, _ := newTestModel(t)
	m.sync.ApplyScroll(96) // Two days in

	m, _ = press(t, m, "a")
	sel, _ := m.timeline.Selected()
	if sel.StartDay != 2 || sel.StartHour != timeline.DefaultClipStartHour {
		t.Fatalf("new clip at day %d hour %v, want day 2 hour 4", sel.StartDay, sel.StartHour)
	}
}

func TestRenameClip(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		submit    string
		wantLabel string
		wantError bool
	}{
		{name: "enter applies", value: "Outro", submit: "enter", wantLabel: "Outro"},
		{name: "esc cancels", value: "Outro", submit: "esc", wantLabel: "Intro"},
		{name: "empty name is rejected", value: "   ", submit: "enter", wantLabel: "Intro", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := seedClip(0, 0, 4, 12)
			m, _ := newTestModel(t, c)
			m.timeline.Select(c.ID)

			m, _ = press(t, m, "r")
			if m.mode != ModePrompt {
				t.Fatalf("mode = %v, want prompt", m.mode)
			}
			if m.prompt.Value() != "Intro" {
				t.Fatalf("prompt value = %q, want current label", m.prompt.Value())
			}

			m.prompt.SetValue(tt.value)
			m, _ = press(t, m, tt.submit)

			if m.mode != ModeNormal {
				t.Fatalf("mode = %v, want normal", m.mode)
			}
			got, _ := m.timeline.Clip(c.ID)
			if got.Label != tt.wantLabel {
				t.Fatalf("label = %q, want %q", got.Label, tt.wantLabel)
			}
			if m.statusError != tt.wantError {
				t.Fatalf("statusError = %v, want %v", m.statusError, tt.wantError)
			}
		})
	}
}

func TestTrackKeys(t *testing.T) {
	c := seedClip(1, 0, 4, 12)
	m, _ := newTestModel(t, c)

	m, _ = press(t, m, "t")
	if m.timeline.TrackCount() != 3 {
		t.Fatalf("tracks = %d, want 3", m.timeline.TrackCount())
	}
	if m.track != 2 {
		t.Fatalf("focused track = %d, want the appended one", m.track)
	}
	if m.main.ScrollHeight() != float64(m.layout.GridH) {
		t.Fatalf("scroll height = %v, want client height", m.main.ScrollHeight())
	}

	m, _ = press(t, m, "K")
	if m.track != 1 {
		t.Fatalf("focused track after move = %d, want 1", m.track)
	}
	if tr, _ := m.timeline.Track(1); tr.Name != "New Track 3" {
		t.Fatalf("track 1 = %q, want the moved track", tr.Name)
	}
	if got, _ := m.timeline.Clip(c.ID); got.TrackIndex != 2 {
		t.Fatalf("clip track = %d, want 2 after swap", got.TrackIndex)
	}

	m, _ = press(t, m, "R")
	m.prompt.SetValue("Music")
	m, _ = press(t, m, "enter")
	if tr, _ := m.timeline.Track(1); tr.Name != "Music" {
		t.Fatalf("renamed track = %q, want Music", tr.Name)
	}

	m, _ = press(t, m, "i")
	if m.timeline.TrackCount() != 4 || m.track != 1 {
		t.Fatalf("insert: tracks = %d focus = %d", m.timeline.TrackCount(), m.track)
	}
	if got, _ := m.timeline.Clip(c.ID); got.TrackIndex != 3 {
		t.Fatalf("clip track = %d, want 3 after insert", got.TrackIndex)
	}

	m, _ = press(t, m, "D", "D", "D", "D")
	if m.timeline.TrackCount() != 0 {
		t.Fatalf("tracks = %d, want 0", m.timeline.TrackCount())
	}
	if len(m.timeline.Clips()) != 0 {
		t.Fatalf("clips on removed tracks should be gone")
	}

	m, _ = press(t, m, "a")
	if m.statusMsg != "Add a track first" {
		t.Fatalf("status = %q", m.statusMsg)
	}
}

func TestFocusTrackWraps(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "shift+tab")
	if m.track != 1 {
		t.Fatalf("focus = %d, want 1", m.track)
	}
	m, _ = press(t, m, "tab")
	if m.track != 0 {
		t.Fatalf("focus = %d, want 0", m.track)
	}
}

func TestZoomRestoresScrollAfterLayout(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantWidth float64
		wantLeft  float64
	}{
		{name: "zoom in keeps left edge", key: "+", wantWidth: 96, wantLeft: 200},
		{name: "zoom out keeps left edge", key: "-", wantWidth: 24, wantLeft: 50},
		// (100 + 100) * 2 - 100
		{name: "zoom in keeps right edge", key: "}", wantWidth: 96, wantLeft: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			m.sync.ApplyScroll(100)

			m, cmd := press(t, m, tt.key)
			if m.zoom.DayWidth != tt.wantWidth {
				t.Fatalf("day width = %v, want %v", m.zoom.DayWidth, tt.wantWidth)
			}
			if !m.layoutQ.Pending() {
				t.Fatalf("expected the scroll restore to wait for layout")
			}
			if cmd == nil {
				t.Fatalf("expected a layout settled command")
			}
			msg := cmd()
			if _, ok := msg.(commands.LayoutSettledMsg); !ok {
				t.Fatalf("cmd returned %T, want LayoutSettledMsg", msg)
			}

			updated, _ := m.Update(msg)
			m = updated.(Model)
			if m.layoutQ.Pending() {
				t.Fatalf("expected the queue to be flushed")
			}
			if got := m.main.ScrollLeft(); got != tt.wantLeft {
				t.Fatalf("scroll left = %v, want %v", got, tt.wantLeft)
			}
			if got := m.header.ScrollLeft(); got != tt.wantLeft {
				t.Fatalf("header scroll left = %v, want %v", got, tt.wantLeft)
			}
		})
	}
}

func TestZoomLimits(t *testing.T) {
	m, _ := newTestModel(t)
	m.zoom.DayWidth = maxDayWidth

	m, _ = press(t, m, "+")
	if m.statusMsg != "Zoom limit reached" {
		t.Fatalf("status = %q", m.statusMsg)
	}
	if m.layoutQ.Pending() {
		t.Fatalf("expected no pending restore at the limit")
	}

	m, _ = press(t, m, "<", "<", "<")
	if m.zoom.TrackHeight != minTrackHeight {
		t.Fatalf("track height = %v, want %v", m.zoom.TrackHeight, minTrackHeight)
	}
}

func TestCopyClips(t *testing.T) {
	c := seedClip(0, 0, 4, 12)
	m, cb := newTestModel(t, c, seedClip(1, 1, 0, 6))

	_, cmd := press(t, m, "y")
	msg := cmd()
	if status, ok := msg.(commands.StatusMsgCmd); !ok || status.Msg != "Copied 2 clips to clipboard" {
		t.Fatalf("copy all returned %#v", msg)
	}
	if lines := strings.Split(cb.text, "\n"); len(lines) != 2 {
		t.Fatalf("copied %d lines, want 2", len(lines))
	}

	m.timeline.Select(c.ID)
	_, cmd = press(t, m, "y")
	cmd()
	want := "Intro\tVideo\t2025-01-06 04:00\t2025-01-06 16:00\t12h"
	if cb.text != want {
		t.Fatalf("copied %q, want %q", cb.text, want)
	}
}

func TestClearStatusKeepsNewerMessage(t *testing.T) {
	m, _ := newTestModel(t)
	m.setStatus("hello")

	updated, _ := m.Update(commands.ClearStatusMsg{})
	m = updated.(Model)
	if m.statusMsg != "hello" {
		t.Fatalf("status cleared before it expired")
	}

	m.now = func() time.Time { return testStart.Add(time.Minute) }
	updated, _ = m.Update(commands.ClearStatusMsg{})
	m = updated.(Model)
	if m.statusMsg != "" {
		t.Fatalf("status = %q, want cleared", m.statusMsg)
	}
}

func TestHelpOverlayBlocksKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "?")
	if !m.overlay.Active() {
		t.Fatalf("expected help overlay")
	}
	m, _ = press(t, m, "a")
	if len(m.timeline.Clips()) != 0 {
		t.Fatalf("keys should not reach the editor while help is open")
	}
	m, _ = press(t, m, "esc")
	if m.overlay.Active() {
		t.Fatalf("expected esc to close help")
	}
}

func TestMoveTrackAtEdgeReportsStatus(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := press(t, m, "K")
	if cmd == nil {
		t.Fatalf("expected a status command")
	}
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	if m.statusMsg != "Track cannot move further" {
		t.Fatalf("status = %q", m.statusMsg)
	}
}
