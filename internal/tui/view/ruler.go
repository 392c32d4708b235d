package view

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/lanes/internal/dateutil"
)

// RulerColors are the colors the day ruler is drawn with.
type RulerColors struct {
	Bg      lipgloss.Color
	Fg      lipgloss.Color
	Muted   lipgloss.Color
	Weekend lipgloss.Color
	Guide   lipgloss.Color
	Aligned lipgloss.Color
}

// RulerState describes the visible part of the two-line day ruler.
type RulerState struct {
	Width    int
	Left     int
	DayWidth float64
	Days     []time.Time
	Guides   []GuideMark
	Colors   RulerColors
}

// RulerHeight is the number of rows the ruler takes.
const RulerHeight = 2

// hourSteps are the label intervals the tick row picks from.
var hourSteps = []int{1, 2, 3, 4, 6, 12, 24}

// RenderRuler renders day labels above hour ticks. Guide columns are marked
// on the tick row.
func RenderRuler(state RulerState) string {
	if state.Width <= 0 {
		return ""
	}
	cv := newCanvas(state.Width, RulerHeight, state.Colors.Bg)
	if state.DayWidth <= 0 || len(state.Days) == 0 {
		return cv.String()
	}

	hw := state.DayWidth / 24
	step := HourLabelStep(hw)
	right := state.Left + state.Width

	first := max(0, int(math.Floor(float64(state.Left)/state.DayWidth)))
	for day := first; day < len(state.Days); day++ {
		start := int(math.Floor(float64(day) * state.DayWidth))
		end := int(math.Floor(float64(day+1) * state.DayWidth))
		if start >= right {
			break
		}
		d := state.Days[day]
		fg := state.Colors.Fg
		if dateutil.IsWeekend(d) {
			fg = state.Colors.Weekend
		}
		x := start - state.Left
		cv.set(x, 0, '│', state.Colors.Muted, "", false)
		cv.text(x+1, 0, DayLabel(d, end-start-1), x+1, end-state.Left, fg, true)

		cv.set(x, 1, '│', state.Colors.Muted, "", false)
		if step == 0 {
			continue
		}
		for h := step; h < 24; h += step {
			hx := int(math.Floor(float64(start)+float64(h)*hw)) - state.Left
			cv.text(hx, 1, fmt.Sprintf("%02d", h), hx, min(end-state.Left, hx+3), state.Colors.Muted, false)
		}
	}

	for _, g := range state.Guides {
		color := state.Colors.Guide
		if g.Aligned {
			color = state.Colors.Aligned
		}
		cv.set(g.Col-state.Left, 1, '▼', color, "", true)
	}

	return cv.String()
}

// HourLabelStep picks the smallest hour interval whose labels are at least
// three cells apart. Zero means no hour labels fit.
func HourLabelStep(hourWidth float64) int {
	for _, s := range hourSteps {
		if float64(s)*hourWidth >= 3 {
			if s == 24 {
				return 0
			}
			return s
		}
	}
	return 0
}

// DayLabel formats a day for a column of the given width, dropping detail
// as the column narrows.
func DayLabel(d time.Time, width int) string {
	for _, layout := range []string{"Mon 02 Jan", "Mon 02", "02"} {
		if s := d.Format(layout); len(s) <= width {
			return s
		}
	}
	return ""
}
