package view

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/lanes/internal/dateutil"
	"github.com/javiermolinar/lanes/internal/tui/theme"
)

// ClipBox is a clip laid out in content cells. X1 and Y1 are exclusive.
type ClipBox struct {
	X0, Y0   int
	X1, Y1   int
	Label    string
	Colors   theme.ClipColors
	Selected bool
	Active   bool // Being dragged or resized
}

// GuideMark is a guide line at a content column.
type GuideMark struct {
	Col     int
	Aligned bool
}

// GridColors are the colors the grid background is drawn with.
type GridColors struct {
	Bg        lipgloss.Color
	WeekendBg lipgloss.Color
	Line      lipgloss.Color
	Guide     lipgloss.Color
	Aligned   lipgloss.Color
}

// GridState describes the visible part of the clip grid.
type GridState struct {
	Width, Height int // Visible cells
	Left, Top     int // Scroll offset in content cells

	DayWidth    float64
	TrackHeight float64
	Days        []time.Time
	Tracks      int

	Clips  []ClipBox // Drawn in order; later boxes cover earlier ones
	Guides []GuideMark
	Colors GridColors
}

// RenderGrid renders the clip grid viewport.
func RenderGrid(state GridState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return ""
	}
	cv := newCanvas(state.Width, state.Height, state.Colors.Bg)

	contentW := int(math.Floor(float64(len(state.Days)) * state.DayWidth))
	contentH := int(math.Floor(float64(state.Tracks) * state.TrackHeight))

	for vx := range cv.w {
		col := state.Left + vx
		if col >= contentW || state.DayWidth <= 0 {
			break
		}
		day := int(math.Floor(float64(col) / state.DayWidth))
		bg := state.Colors.Bg
		if day < len(state.Days) && dateutil.IsWeekend(state.Days[day]) {
			bg = state.Colors.WeekendBg
		}
		boundary := int(math.Floor(float64(day)*state.DayWidth)) == col
		for vy := range cv.h {
			row := state.Top + vy
			if row >= contentH {
				break
			}
			switch {
			case boundary:
				cv.set(vx, vy, '│', state.Colors.Line, bg, false)
			case trackGap(row, state.TrackHeight):
				cv.set(vx, vy, '┄', state.Colors.Line, bg, false)
			default:
				cv.set(vx, vy, ' ', "", bg, false)
			}
		}
	}

	for _, g := range state.Guides {
		vx := g.Col - state.Left
		if vx < 0 || vx >= cv.w {
			continue
		}
		color := state.Colors.Guide
		if g.Aligned {
			color = state.Colors.Aligned
		}
		for vy := range min(cv.h, contentH-state.Top) {
			cv.set(vx, vy, '┊', color, "", g.Aligned)
		}
	}

	for _, box := range state.Clips {
		drawClip(cv, box, state.Left, state.Top)
	}

	return cv.String()
}

// trackGap reports whether row is the separator row at the bottom of a track.
// Tracks shorter than three rows have no separator.
func trackGap(row int, trackHeight float64) bool {
	if trackHeight < 3 {
		return false
	}
	t := math.Floor(float64(row) / trackHeight)
	return row+1 == int(math.Floor((t+1)*trackHeight))
}

func drawClip(cv *canvas, box ClipBox, left, top int) {
	x0, x1 := box.X0-left, box.X1-left
	y0, y1 := box.Y0-top, box.Y1-top
	if x1 <= 0 || y1 <= 0 || x0 >= cv.w || y0 >= cv.h || x1 <= x0 || y1 <= y0 {
		return
	}

	body := box.Colors.Bg
	if box.Selected || box.Active {
		body = box.Colors.Selected
	}
	cv.fill(x0, y0, x1, y1, body)

	width := x1 - x0
	if width >= 3 {
		cv.fill(x0, y0, x0+1, y1, box.Colors.Handle)
		cv.fill(x1-1, y0, x1, y1, box.Colors.Handle)
	}

	labelX0, labelX1 := x0, x1
	if width >= 3 {
		labelX0, labelX1 = x0+1, x1-1
	}
	label := ansi.Truncate(box.Label, labelX1-labelX0, "…")
	labelRow := y0 + (y1-y0-1)/2
	cv.text(labelX0, labelRow, label, labelX0, labelX1, box.Colors.Text, box.Selected || box.Active)
}
