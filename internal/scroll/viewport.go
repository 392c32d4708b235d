// Package scroll keeps the timeline's scrollable viewports in lock-step and
// re-anchors the scroll position when the zoom changes.
package scroll

// Viewport is a scrollable region as seen by the synchronizer.
type Viewport interface {
	ScrollLeft() float64
	SetScrollLeft(v float64)
	ScrollTop() float64
	SetScrollTop(v float64)
	ScrollWidth() float64
	ScrollHeight() float64
	ClientWidth() float64
	ClientHeight() float64
}

// Pane is a Viewport over content of a known size. Scroll offsets are clamped
// to the scrollable range, the way a browser clamps scrollLeft/scrollTop.
type Pane struct {
	left, top float64
	contentW  float64
	contentH  float64
	clientW   float64
	clientH   float64
}

// NewPane returns an empty pane.
func NewPane() *Pane {
	return &Pane{}
}

// SetContentSize sets the size of the scrolled content and re-clamps the
// current offsets.
func (p *Pane) SetContentSize(w, h float64) {
	p.contentW = max(0, w)
	p.contentH = max(0, h)
	p.SetScrollLeft(p.left)
	p.SetScrollTop(p.top)
}

// SetClientSize sets the visible size of the pane and re-clamps the current
// offsets.
func (p *Pane) SetClientSize(w, h float64) {
	p.clientW = max(0, w)
	p.clientH = max(0, h)
	p.SetScrollLeft(p.left)
	p.SetScrollTop(p.top)
}

// ScrollBy scrolls by the given offsets.
func (p *Pane) ScrollBy(dx, dy float64) {
	p.SetScrollLeft(p.left + dx)
	p.SetScrollTop(p.top + dy)
}

func (p *Pane) ScrollLeft() float64 { return p.left }
func (p *Pane) ScrollTop() float64  { return p.top }

// ScrollWidth is the larger of the content and client widths.
func (p *Pane) ScrollWidth() float64 { return max(p.contentW, p.clientW) }

// ScrollHeight is the larger of the content and client heights.
func (p *Pane) ScrollHeight() float64 { return max(p.contentH, p.clientH) }

func (p *Pane) ClientWidth() float64  { return p.clientW }
func (p *Pane) ClientHeight() float64 { return p.clientH }

// SetScrollLeft sets the horizontal offset, clamped to [0, scrollWidth-clientWidth].
func (p *Pane) SetScrollLeft(v float64) {
	p.left = clamp(v, 0, p.ScrollWidth()-p.clientW)
}

// SetScrollTop sets the vertical offset, clamped to [0, scrollHeight-clientHeight].
func (p *Pane) SetScrollTop(v float64) {
	p.top = clamp(v, 0, p.ScrollHeight()-p.clientH)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}
