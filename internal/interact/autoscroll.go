package interact

// Autoscroll configures how a gesture scrolls its container when the pointer
// nears an edge.
type Autoscroll struct {
	Margin float64 // Distance from the container edge that triggers scrolling
	Speed  float64 // Scroll distance per autoscroll step
}

// Enabled reports whether autoscroll is configured.
func (a Autoscroll) Enabled() bool {
	return a.Margin > 0 && a.Speed > 0
}

// Step returns the scroll offset to apply for a pointer at pos inside a
// container spanning [lo, hi). It is negative near lo, positive near hi and
// zero elsewhere.
func (a Autoscroll) Step(pos, lo, hi float64) float64 {
	if !a.Enabled() || hi <= lo {
		return 0
	}
	switch {
	case pos < lo+a.Margin:
		return -a.Speed
	case pos >= hi-a.Margin:
		return a.Speed
	default:
		return 0
	}
}

// AutoscrollConfig declares autoscroll per gesture kind.
type AutoscrollConfig struct {
	Drag   Autoscroll
	Resize Autoscroll
}

// For returns the autoscroll settings for a gesture kind.
func (c AutoscrollConfig) For(phase Phase) Autoscroll {
	switch phase {
	case PhaseDragging:
		return c.Drag
	case PhaseResizing:
		return c.Resize
	default:
		return Autoscroll{}
	}
}
