package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal cell. A zero rune marks the trailing half of a wide
// rune and is not emitted.
type cell struct {
	ch   rune
	fg   lipgloss.Color
	bg   lipgloss.Color
	bold bool
}

// canvas is a fixed-size grid of cells rendered row by row, with runs of
// equally styled cells sharing one lipgloss render.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int, bg lipgloss.Color) *canvas {
	c := &canvas{w: max(0, w), h: max(0, h)}
	c.cells = make([]cell, c.w*c.h)
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', bg: bg}
	}
	return c
}

func (c *canvas) in(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

func (c *canvas) at(x, y int) *cell {
	return &c.cells[y*c.w+x]
}

// set writes ch at (x, y), keeping the cell background when bg is empty.
func (c *canvas) set(x, y int, ch rune, fg, bg lipgloss.Color, bold bool) {
	if !c.in(x, y) {
		return
	}
	cl := c.at(x, y)
	if bg == "" {
		bg = cl.bg
	}
	*cl = cell{ch: ch, fg: fg, bg: bg, bold: bold}
}

// fill paints the background of [x0, x1) x [y0, y1) and blanks it.
func (c *canvas) fill(x0, y0, x1, y1 int, bg lipgloss.Color) {
	for y := max(0, y0); y < min(c.h, y1); y++ {
		for x := max(0, x0); x < min(c.w, x1); x++ {
			*c.at(x, y) = cell{ch: ' ', bg: bg}
		}
	}
}

// text writes s starting at column x of row y, clipped to [clipX0, clipX1).
// Wide runes take two cells; a wide rune cut by the clip edge becomes a space.
func (c *canvas) text(x, y int, s string, clipX0, clipX1 int, fg lipgloss.Color, bold bool) {
	if y < 0 || y >= c.h {
		return
	}
	clipX0 = max(0, clipX0)
	clipX1 = min(c.w, clipX1)
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= clipX1 {
			return
		}
		switch {
		case x < clipX0 || x+rw > clipX1:
			for i := range rw {
				if cx := x + i; cx >= clipX0 && cx < clipX1 {
					c.set(cx, y, ' ', fg, "", bold)
				}
			}
		default:
			c.set(x, y, r, fg, "", bold)
			for i := 1; i < rw; i++ {
				c.set(x+i, y, 0, fg, "", bold)
			}
		}
		x += rw
	}
}

// String renders the canvas.
func (c *canvas) String() string {
	var b strings.Builder
	var run strings.Builder
	for y := range c.h {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		start := 0
		for start < len(row) {
			end := start
			run.Reset()
			for end < len(row) && sameStyle(row[start], row[end]) {
				if row[end].ch != 0 {
					run.WriteRune(row[end].ch)
				}
				end++
			}
			b.WriteString(cellStyle(row[start]).Render(run.String()))
			start = end
		}
	}
	return b.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold
}

func cellStyle(c cell) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(c.bold)
	if c.fg != "" {
		s = s.Foreground(c.fg)
	}
	if c.bg != "" {
		s = s.Background(c.bg)
	}
	return s
}
