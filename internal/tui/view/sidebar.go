package view

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// SidebarTrack is one row group of the track sidebar.
type SidebarTrack struct {
	Name   string
	Icon   string
	Color  lipgloss.Color
	Clips  int
	Active bool // Focused track
}

// SidebarColors are the colors the sidebar is drawn with.
type SidebarColors struct {
	Bg       lipgloss.Color
	Fg       lipgloss.Color
	Muted    lipgloss.Color
	ActiveBg lipgloss.Color
}

// SidebarState describes the visible part of the track sidebar.
type SidebarState struct {
	Width, Height int
	Top           int
	TrackHeight   float64
	Tracks        []SidebarTrack
	Colors        SidebarColors
}

var trackIcons = map[string]string{
	"layers": "≡",
	"film":   "▶",
	"music":  "♪",
	"type":   "T",
	"mic":    "●",
	"image":  "▣",
}

// TrackIcon maps an icon name to a single glyph.
func TrackIcon(name string) string {
	if g, ok := trackIcons[name]; ok {
		return g
	}
	return "•"
}

// RenderSidebar renders the track names next to the grid.
func RenderSidebar(state SidebarState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return ""
	}
	cv := newCanvas(state.Width, state.Height, state.Colors.Bg)
	if state.TrackHeight <= 0 {
		return cv.String()
	}

	for vy := range cv.h {
		row := state.Top + vy
		t := int(math.Floor(float64(row) / state.TrackHeight))
		if t >= len(state.Tracks) {
			break
		}
		tr := state.Tracks[t]
		if tr.Active {
			cv.fill(0, vy, cv.w, vy+1, state.Colors.ActiveBg)
		}
		first := int(math.Floor(float64(t) * state.TrackHeight))
		switch row - first {
		case 0:
			cv.set(0, vy, '▎', tr.Color, "", false)
			name := runewidth.Truncate(tr.Name, cv.w-4, "…")
			cv.text(1, vy, TrackIcon(tr.Icon)+" "+name, 1, cv.w-1, state.Colors.Fg, tr.Active)
		case 1:
			cv.set(0, vy, '▎', tr.Color, "", false)
			cv.text(3, vy, clipCount(tr.Clips), 3, cv.w-1, state.Colors.Muted, false)
		default:
			if row+1 < int(math.Floor(float64(t+1)*state.TrackHeight)) {
				cv.set(0, vy, '▎', tr.Color, "", false)
			}
		}
	}
	return cv.String()
}

func clipCount(n int) string {
	if n == 1 {
		return "1 clip"
	}
	return fmt.Sprintf("%d clips", n)
}
