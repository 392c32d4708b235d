package ui

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/javiermolinar/lanes/internal/timeline"
)

// ClipRow is one clip of the show table.
type ClipRow struct {
	Track    string
	Label    string
	Start    time.Time
	End      time.Time
	Duration float64 // Hours
}

// TrackStats summarizes the clips on one track.
type TrackStats struct {
	Name  string
	Clips int
	Hours float64
}

// ClipRows lists every clip ordered by track, then start time. Times are
// counted from the first day of the timeline.
func ClipRows(tl *timeline.Timeline) []ClipRow {
	var origin time.Time
	if days := tl.Days(); len(days) > 0 {
		origin = days[0]
	}

	clips := tl.Clips()
	slices.SortStableFunc(clips, func(a, b *timeline.Clip) int {
		if c := cmp.Compare(a.TrackIndex, b.TrackIndex); c != 0 {
			return c
		}
		return cmp.Compare(a.StartHours(), b.StartHours())
	})

	rows := make([]ClipRow, 0, len(clips))
	for _, c := range clips {
		tr, _ := tl.Track(c.TrackIndex)
		rows = append(rows, ClipRow{
			Track:    tr.Name,
			Label:    c.Label,
			Start:    hoursAfter(origin, c.StartHours()),
			End:      hoursAfter(origin, c.EndHours()),
			Duration: c.DurationHours,
		})
	}
	return rows
}

// Summarize returns per-track clip counts and hours, in track order.
func Summarize(tl *timeline.Timeline) []TrackStats {
	stats := make([]TrackStats, tl.TrackCount())
	for i, tr := range tl.Tracks() {
		stats[i].Name = tr.Name
	}
	for _, c := range tl.Clips() {
		stats[c.TrackIndex].Clips++
		stats[c.TrackIndex].Hours += c.DurationHours
	}
	return stats
}

func hoursAfter(origin time.Time, hours float64) time.Time {
	return origin.Add(time.Duration(hours * float64(time.Hour)))
}

// FormatHours formats a duration in hours as a human-readable duration.
func FormatHours(hours float64) string {
	minutes := int(math.Round(hours * 60))
	if minutes == 0 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%dm", h, m)
}

// FormatRange formats the span of a day sequence.
func FormatRange(days []time.Time) string {
	if len(days) == 0 {
		return ""
	}
	return days[0].Format("Mon 02 Jan 2006") + " → " + days[len(days)-1].Format("Mon 02 Jan 2006")
}

// RenderClipTable renders rows as a bordered table. A positive width caps
// the table width.
func RenderClipTable(rows []ClipRow, width int) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TRACK", "CLIP", "START", "END", "DURATION").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range rows {
		t.Row(
			r.Track,
			r.Label,
			r.Start.Format("Mon 02 Jan 15:04"),
			r.End.Format("Mon 02 Jan 15:04"),
			FormatHours(r.Duration),
		)
	}

	out := t.Render()
	if width > 0 && lipgloss.Width(out) > width {
		out = t.Width(width).Render()
	}
	return out
}
