package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/lanes/internal/dateutil"
	"github.com/javiermolinar/lanes/internal/timeline"
)

func testTimeline() *timeline.Timeline {
	days := dateutil.DaySequence(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), 7)
	tracks := []timeline.Track{
		timeline.NewTrack("Video", "film", "#3949ab"),
		timeline.NewTrack("Audio", "music", "#00897b"),
		timeline.NewTrack("Titles", "type", "#8e24aa"),
	}
	clips := []*timeline.Clip{
		{Label: "Outro", TrackIndex: 0, StartDay: 2, StartHour: 8, DurationHours: 6},
		{Label: "Intro", TrackIndex: 0, StartDay: 0, StartHour: 4, DurationHours: 12},
		{Label: "Score", TrackIndex: 1, StartDay: 1, StartHour: 22, DurationHours: 3.5},
	}
	return timeline.New(days, tracks, clips)
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{hours: 0, want: "0m"},
		{hours: 0.5, want: "30m"},
		{hours: 1, want: "1h"},
		{hours: 3.5, want: "3h30m"},
		{hours: 48, want: "48h"},
	}
	for _, tt := range tests {
		if got := FormatHours(tt.hours); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestFormatRange(t *testing.T) {
	days := testTimeline().Days()
	if got, want := FormatRange(days), "Mon 06 Jan 2025 → Sun 12 Jan 2025"; got != want {
		t.Errorf("FormatRange = %q, want %q", got, want)
	}
	if got := FormatRange(nil); got != "" {
		t.Errorf("FormatRange(nil) = %q, want empty", got)
	}
}

func TestClipRows(t *testing.T) {
	rows := ClipRows(testTimeline())

	wantLabels := []string{"Intro", "Outro", "Score"}
	if len(rows) != len(wantLabels) {
		t.Fatalf("rows = %d, want %d", len(rows), len(wantLabels))
	}
	for i, want := range wantLabels {
		if rows[i].Label != want {
			t.Errorf("row %d = %q, want %q", i, rows[i].Label, want)
		}
	}

	score := rows[2]
	if score.Track != "Audio" {
		t.Errorf("score track = %q, want Audio", score.Track)
	}
	wantStart := time.Date(2025, 1, 7, 22, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 1, 8, 1, 30, 0, 0, time.UTC)
	if !score.Start.Equal(wantStart) || !score.End.Equal(wantEnd) {
		t.Errorf("score spans %v - %v, want %v - %v", score.Start, score.End, wantStart, wantEnd)
	}
}

func TestSummarize(t *testing.T) {
	stats := Summarize(testTimeline())

	want := []TrackStats{
		{Name: "Video", Clips: 2, Hours: 18},
		{Name: "Audio", Clips: 1, Hours: 3.5},
		{Name: "Titles", Clips: 0, Hours: 0},
	}
	if len(stats) != len(want) {
		t.Fatalf("stats = %d, want %d", len(stats), len(want))
	}
	for i := range want {
		if stats[i] != want[i] {
			t.Errorf("stats[%d] = %+v, want %+v", i, stats[i], want[i])
		}
	}
}

func TestRenderClipTable(t *testing.T) {
	out := ansi.Strip(RenderClipTable(ClipRows(testTimeline()), 0))

	for _, want := range []string{"TRACK", "DURATION", "Intro", "Mon 06 Jan 04:00", "Mon 06 Jan 16:00", "3h30m"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	// Header, separator, three rows and two borders.
	if lines := strings.Split(out, "\n"); len(lines) != 7 {
		t.Errorf("table has %d lines, want 7:\n%s", len(lines), out)
	}
}
