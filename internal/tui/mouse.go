package tui

import (
	"math"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lanes/internal/interact"
	"github.com/javiermolinar/lanes/internal/timeline"
	"github.com/javiermolinar/lanes/internal/tui/commands"
	"github.com/javiermolinar/lanes/internal/tui/view"
)

// wheelStep is how many cells one wheel notch scrolls.
const wheelStep = 3

// clipBox is a clip laid out in content cells.
type clipBox struct {
	clip   *timeline.Clip
	x0, y0 int
	x1, y1 int // Exclusive
}

func (b clipBox) contains(x, y int) bool {
	return x >= b.x0 && x < b.x1 && y >= b.y0 && y < b.y1
}

// edgesAt returns the resize edges held by a press at column x. Clips at
// least three cells wide have a handle cell at each end; two-cell clips only
// have the right one.
func (b clipBox) edgesAt(x int) interact.Edges {
	w := b.x1 - b.x0
	switch {
	case w >= 3 && x == b.x0:
		return interact.Edges{Left: true}
	case w >= 2 && x == b.x1-1:
		return interact.Edges{Right: true}
	default:
		return interact.Edges{}
	}
}

// clipBoxes lays out every clip in draw order: the selected or active clip
// is drawn last so it stays on top.
func (m Model) clipBoxes() []clipBox {
	mapper := m.mapper()
	rows := int(math.Floor(mapper.TrackHeight))
	if rows >= 3 {
		rows-- // Separator row
	}
	rows = max(1, rows)

	top, hasTop := m.topClipID()

	clips := m.timeline.Clips()
	boxes := make([]clipBox, 0, len(clips))
	var last *clipBox
	for _, c := range clips {
		x0 := int(math.Floor(mapper.ClipX(c) + 0.5))
		x1 := max(x0+1, int(math.Floor(mapper.ClipX(c)+mapper.ClipWidth(c)+0.5)))
		y0 := int(math.Floor(mapper.ClipY(c)))
		b := clipBox{clip: c, x0: x0, y0: y0, x1: x1, y1: y0 + rows}
		if hasTop && c.ID == top {
			last = &b
			continue
		}
		boxes = append(boxes, b)
	}
	if last != nil {
		boxes = append(boxes, *last)
	}
	return boxes
}

// topClipID is the clip drawn above all others: the one being manipulated,
// else the selected one.
func (m Model) topClipID() (timeline.ClipID, bool) {
	if id, ok := m.core.State().DraggingID(); ok {
		return id, true
	}
	if c, ok := m.timeline.Selected(); ok {
		return c.ID, true
	}
	return 0, false
}

// hitClip finds the topmost clip under the content cell (x, y).
func (m Model) hitClip(x, y int) (clipBox, bool) {
	boxes := m.clipBoxes()
	for _, b := range slices.Backward(boxes) {
		if b.contains(x, y) {
			return b, true
		}
	}
	return clipBox{}, false
}

// contentCell converts a screen cell inside the grid to a content cell.
func (m Model) contentCell(x, y int) (int, int) {
	cx := x - m.layout.GridX + int(math.Floor(m.main.ScrollLeft()))
	cy := y - m.layout.GridY + int(math.Floor(m.main.ScrollTop()))
	return cx, cy
}

// handleMouseMsg translates mouse events into gesture steps: a left press on
// a clip starts a drag (or a resize on an edge cell), motion moves it and
// release ends it.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.logMouse(msg)
	// A gesture started before a prompt or the help overlay opened still ends
	// on release.
	if msg.Action == tea.MouseActionRelease {
		m.endGesture()
		return m, nil
	}
	if m.mode == ModePrompt || m.overlay.Active() {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.handlePress(msg.X, msg.Y)
		case tea.MouseButtonWheelUp:
			m.scrollBy(0, -wheelStep)
		case tea.MouseButtonWheelDown:
			m.scrollBy(0, wheelStep)
		case tea.MouseButtonWheelLeft:
			m.scrollBy(-wheelStep, 0)
		case tea.MouseButtonWheelRight:
			m.scrollBy(wheelStep, 0)
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.core.Phase() == interact.PhaseIdle {
			return m, nil
		}
		dx, dy := msg.X-m.pointer.x, msg.Y-m.pointer.y
		m.pointer = pointer{x: msg.X, y: msg.Y}
		m.moveGesture(float64(dx), float64(dy))
		return m, m.maybeStartAutoscroll()

	}
	return m, nil
}

func (m Model) handlePress(x, y int) (tea.Model, tea.Cmd) {
	l := m.layout
	switch {
	case l.inGrid(x, y):
		cx, cy := m.contentCell(x, y)
		b, ok := m.hitClip(cx, cy)
		if !ok {
			m.timeline.ClearSelection()
			if t := m.mapper().TrackAt(float64(cy)); t >= 0 {
				m.track = t
			}
			return m, nil
		}
		m.selectClip(b.clip)
		m.pointer = pointer{x: x, y: y}
		g := interact.Gesture{
			Target:  b.clip.ID.ElementID(),
			ClientX: float64(x),
			ClientY: float64(y),
		}
		if edges := b.edgesAt(cx); edges.Left || edges.Right {
			g.Edges = edges
			m.core.ResizeStart(g)
		} else {
			m.core.DragStart(g)
		}
		return m, nil

	case l.inSidebar(x, y):
		cy := y - l.GridY + int(math.Floor(m.main.ScrollTop()))
		if t := m.mapper().TrackAt(float64(cy)); t >= 0 {
			m.track = t
		}
	}
	return m, nil
}

func (m *Model) moveGesture(dx, dy float64) {
	g := interact.Gesture{
		ClientX: float64(m.pointer.x),
		ClientY: float64(m.pointer.y),
		DX:      dx,
		DY:      dy,
	}
	switch m.core.Phase() {
	case interact.PhaseDragging:
		m.core.DragMove(g)
	case interact.PhaseResizing:
		m.core.ResizeMove(g)
	}
	if c, ok := m.timeline.Selected(); ok {
		m.track = c.TrackIndex
	}
}

func (m *Model) endGesture() {
	g := interact.Gesture{ClientX: float64(m.pointer.x), ClientY: float64(m.pointer.y)}
	switch m.core.Phase() {
	case interact.PhaseDragging:
		m.core.DragEnd(g)
	case interact.PhaseResizing:
		m.core.ResizeEnd(g)
	}
}

// autoscrollStep returns how far the grid should scroll for the current
// pointer position. Resizes only scroll horizontally.
func (m Model) autoscrollStep() (dx, dy float64) {
	phase := m.core.Phase()
	a := m.autoscroll.For(phase)
	l := m.layout
	dx = a.Step(float64(m.pointer.x), float64(l.GridX), float64(l.GridX+l.GridW))
	if phase == interact.PhaseDragging {
		dy = a.Step(float64(m.pointer.y), float64(l.GridY), float64(l.GridY+l.GridH))
	}
	return dx, dy
}

func (m *Model) maybeStartAutoscroll() tea.Cmd {
	if m.autoscrolling {
		return nil
	}
	if dx, dy := m.autoscrollStep(); dx == 0 && dy == 0 {
		return nil
	}
	m.autoscrolling = true
	return commands.AutoscrollTick()
}

// handleAutoscrollTick scrolls the grid one step and replays a zero-delta
// move so the clip follows the scroll. Ticking stops once the gesture ends,
// the pointer leaves the margin or the grid cannot scroll further.
func (m Model) handleAutoscrollTick() (tea.Model, tea.Cmd) {
	if m.core.Phase() == interact.PhaseIdle {
		m.autoscrolling = false
		return m, nil
	}
	dx, dy := m.autoscrollStep()
	left, top := m.main.ScrollLeft(), m.main.ScrollTop()
	m.scrollBy(dx, dy)
	if m.main.ScrollLeft() == left && m.main.ScrollTop() == top {
		m.autoscrolling = false
		return m, nil
	}
	m.moveGesture(0, 0)
	return m, commands.AutoscrollTick()
}

// gridState builds the visible grid for rendering.
func (m Model) gridState() view.GridState {
	l := m.layout
	pal := m.styles.Palette()
	activeID, active := m.core.State().DraggingID()
	sel, hasSel := m.timeline.Selected()

	boxes := m.clipBoxes()
	out := make([]view.ClipBox, len(boxes))
	for i, b := range boxes {
		out[i] = view.ClipBox{
			X0: b.x0, Y0: b.y0, X1: b.x1, Y1: b.y1,
			Label:    b.clip.Label,
			Colors:   pal.Clip(b.clip.Color),
			Selected: hasSel && sel.ID == b.clip.ID,
			Active:   active && activeID == b.clip.ID,
		}
	}

	return view.GridState{
		Width:       l.GridW,
		Height:      l.GridH,
		Left:        int(math.Floor(m.main.ScrollLeft())),
		Top:         int(math.Floor(m.main.ScrollTop())),
		DayWidth:    m.zoom.DayWidth,
		TrackHeight: m.zoom.TrackHeight,
		Days:        m.timeline.Days(),
		Tracks:      m.timeline.TrackCount(),
		Clips:       out,
		Guides:      m.guideMarks(),
		Colors:      m.styles.gridColors(),
	}
}

func (m Model) guideMarks() []view.GuideMark {
	guides := m.core.State().Guides()
	marks := make([]view.GuideMark, len(guides))
	for i, g := range guides {
		marks[i] = view.GuideMark{
			Col:     int(math.Floor(g.X + 0.5)),
			Aligned: g.Aligned,
		}
	}
	return marks
}
