package interact

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/javiermolinar/lanes/internal/timeline"
)

// Phase is the state of the gesture state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseResizing
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Edges tells which clip edges a resize gesture holds.
type Edges struct {
	Left  bool
	Right bool
}

// Gesture is one start, move or end step reported by the gesture source.
type Gesture struct {
	Target  string  // Element id of the clip ("clip-<id>")
	ClientX float64 // Pointer position in view coordinates
	ClientY float64
	DX      float64 // Pointer movement since the previous step
	DY      float64
	Edges   Edges // Active edges, resize gestures only
}

// ScrollSource reports the scroll position and extent of the container the
// clips live in.
type ScrollSource interface {
	ScrollLeft() float64
	ScrollTop() float64
	ScrollWidth() float64
}

// Core runs the drag/resize state machine: Idle → Dragging|Resizing → Idle.
type Core struct {
	timeline *timeline.Timeline
	zoom     *timeline.Zoom
	scroll   ScrollSource
	state    *State
	logger   *log.Logger

	phase Phase
	edges Edges

	// Accumulated geometry of the current gesture, in content coordinates.
	accumX float64
	accumY float64
	accumW float64
	anchor float64 // Fixed right edge while resizing

	// Scroll offsets seen at the previous step.
	lastLeft float64
	lastTop  float64
}

// CoreOption configures optional core behavior.
type CoreOption func(*Core)

// WithLogger sets the logger used for gesture events.
func WithLogger(l *log.Logger) CoreOption {
	return func(c *Core) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCore creates an interaction core over tl. zoom is read on every step so
// zoom changes between steps are honored. scroll may be nil.
func NewCore(tl *timeline.Timeline, zoom *timeline.Zoom, scroll ScrollSource, state *State, opts ...CoreOption) *Core {
	if state == nil {
		state = NewState()
	}
	c := &Core{
		timeline: tl,
		zoom:     zoom,
		scroll:   scroll,
		state:    state,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the shared interaction state owned by the core.
func (c *Core) State() *State {
	return c.state
}

// Phase returns the current gesture phase.
func (c *Core) Phase() Phase {
	return c.phase
}

// DragStart begins moving the clip named by g.Target. Unknown targets are
// ignored and leave the core idle.
func (c *Core) DragStart(g Gesture) {
	clip, ok := c.begin(g, PhaseDragging)
	if !ok {
		return
	}
	m := c.mapper()
	c.accumX = m.ClipX(clip)
	c.accumY = m.ClipY(clip)
	c.logger.Debug("drag start", "clip", clip.ID, "x", c.accumX, "y", c.accumY)
}

// DragMove moves the dragged clip by the pointer delta plus any scroll that
// happened since the previous step.
func (c *Core) DragMove(g Gesture) {
	if c.phase != PhaseDragging {
		return
	}
	clip, ok := c.activeClip()
	if !ok {
		return
	}
	m := c.mapper()
	dl, dt := c.scrollDelta()

	c.accumX += g.DX + dl
	c.accumY += g.DY + dt

	maxX := max(0, c.scrollWidth(m)-m.ClipWidth(clip))
	c.accumX = clamp(c.accumX, 0, maxX)
	c.accumY = max(0, c.accumY)

	m.ApplyPixels(clip, c.accumX, c.accumY)
	c.state.setGuides(computeGuides(c.timeline, m, clip))
}

// DragEnd finishes the drag and emits a change notification.
func (c *Core) DragEnd(Gesture) {
	c.end()
}

// ResizeStart begins resizing the clip named by g.Target. The right edge is
// captured as the anchor for left-edge resizes.
func (c *Core) ResizeStart(g Gesture) {
	clip, ok := c.begin(g, PhaseResizing)
	if !ok {
		return
	}
	m := c.mapper()
	c.edges = g.Edges
	c.accumX = m.ClipX(clip)
	c.accumW = m.ClipWidth(clip)
	c.anchor = c.accumX + c.accumW
	c.logger.Debug("resize start", "clip", clip.ID, "x", c.accumX, "width", c.accumW, "left", g.Edges.Left)
}

// ResizeMove resizes from the active edge. A left-edge resize keeps the right
// edge fixed; neither edge can make the clip narrower than one hour.
func (c *Core) ResizeMove(g Gesture) {
	if c.phase != PhaseResizing {
		return
	}
	clip, ok := c.activeClip()
	if !ok {
		return
	}
	m := c.mapper()
	hw := m.HourWidth()
	dl, _ := c.scrollDelta()

	edges := g.Edges
	if !edges.Left && !edges.Right {
		edges = c.edges
	}

	if edges.Left {
		c.accumX += g.DX + dl
		c.accumX = clamp(c.accumX, 0, c.anchor-hw)
		c.accumW = c.anchor - c.accumX
	} else {
		c.accumW += g.DX + dl
		c.accumW = max(hw, c.accumW)
	}

	m.ApplyPixelsWidth(clip, c.accumX, m.ClipY(clip), c.accumW)
	c.state.setGuides(computeGuides(c.timeline, m, clip))
}

// ResizeEnd finishes the resize and emits a change notification.
func (c *Core) ResizeEnd(Gesture) {
	c.end()
}

// begin resolves the gesture target and takes ownership of the shared state.
// A gesture still in progress is finished first.
func (c *Core) begin(g Gesture, phase Phase) (*timeline.Clip, bool) {
	id, err := timeline.ParseClipID(g.Target)
	if err != nil {
		c.logger.Debug("gesture target ignored", "target", g.Target)
		return nil, false
	}
	clip, ok := c.timeline.Clip(id)
	if !ok {
		c.logger.Debug("gesture target not found", "clip", id)
		return nil, false
	}
	if c.phase != PhaseIdle {
		c.end()
	}

	c.phase = phase
	c.edges = Edges{}
	c.state.begin(id)
	c.lastLeft, c.lastTop = c.scrollOffsets()
	return clip, true
}

// end returns to idle. The shared state is cleared on every path.
func (c *Core) end() {
	defer c.state.clear()

	phase := c.phase
	c.phase = PhaseIdle
	c.edges = Edges{}
	if phase == PhaseIdle {
		return
	}
	id, _ := c.state.DraggingID()
	c.logger.Debug("gesture end", "phase", phase, "clip", id)
	c.timeline.Notify()
}

// activeClip looks up the clip owned by the current gesture. A miss means the
// clip was removed mid-gesture; the step is skipped.
func (c *Core) activeClip() (*timeline.Clip, bool) {
	id, ok := c.state.DraggingID()
	if !ok {
		return nil, false
	}
	return c.timeline.Clip(id)
}

func (c *Core) mapper() timeline.Mapper {
	var z timeline.Zoom
	if c.zoom != nil {
		z = *c.zoom
	}
	return c.timeline.Mapper(z)
}

func (c *Core) scrollOffsets() (left, top float64) {
	if c.scroll == nil {
		return 0, 0
	}
	return c.scroll.ScrollLeft(), c.scroll.ScrollTop()
}

// scrollDelta returns how far the container scrolled since the previous step.
func (c *Core) scrollDelta() (dl, dt float64) {
	left, top := c.scrollOffsets()
	dl, dt = left-c.lastLeft, top-c.lastTop
	c.lastLeft, c.lastTop = left, top
	return dl, dt
}

func (c *Core) scrollWidth(m timeline.Mapper) float64 {
	if c.scroll == nil {
		return m.ContentWidth()
	}
	return c.scroll.ScrollWidth()
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
