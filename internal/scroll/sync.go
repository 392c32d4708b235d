package scroll

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/javiermolinar/lanes/internal/timeline"
)

// Anchor is the viewport edge whose content position is preserved by a zoom.
type Anchor string

const (
	AnchorLeft   Anchor = "left"
	AnchorRight  Anchor = "right"
	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
)

// Horizontal is the recorded horizontal scroll state of the main viewport.
type Horizontal struct {
	Left   float64
	Width  float64
	Client float64
}

// Vertical is the recorded vertical scroll state of the main viewport.
type Vertical struct {
	Top    float64
	Height float64
	Client float64
}

// Synchronizer mirrors the main viewport's scroll position to the header
// (horizontal) and sidebar (vertical) viewports, and keeps the view anchored
// across zoom changes.
type Synchronizer struct {
	main    Viewport
	header  Viewport
	sidebar Viewport

	zoom     *timeline.Zoom
	deferrer Deferrer
	logger   *log.Logger

	horizontal Horizontal
	vertical   Vertical
}

// Option configures optional synchronizer behavior.
type Option func(*Synchronizer)

// WithLogger sets the logger used for zoom events.
func WithLogger(l *log.Logger) Option {
	return func(s *Synchronizer) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSynchronizer creates a synchronizer. Any viewport may be nil; operations
// that need a missing viewport do nothing. A nil deferrer runs zoom
// callbacks immediately.
func NewSynchronizer(main, header, sidebar Viewport, zoom *timeline.Zoom, d Deferrer, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		main:     main,
		header:   header,
		sidebar:  sidebar,
		zoom:     zoom,
		deferrer: d,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Horizontal returns the recorded horizontal scroll state.
func (s *Synchronizer) Horizontal() Horizontal {
	return s.horizontal
}

// Vertical returns the recorded vertical scroll state.
func (s *Synchronizer) Vertical() Vertical {
	return s.vertical
}

// Sync records the main viewport's scroll state and mirrors its offsets to
// the header and sidebar. Call it whenever the main viewport scrolls.
func (s *Synchronizer) Sync() {
	if s.main == nil {
		return
	}
	s.record()
	if s.header != nil {
		s.header.SetScrollLeft(s.main.ScrollLeft())
	}
	if s.sidebar != nil {
		s.sidebar.SetScrollTop(s.main.ScrollTop())
	}
}

// ApplyScroll sets the main viewport's horizontal offset and syncs.
func (s *Synchronizer) ApplyScroll(v float64) {
	if s.main == nil {
		return
	}
	s.main.SetScrollLeft(v)
	s.Sync()
}

// ApplyVerticalScroll sets the main viewport's vertical offset and syncs.
func (s *Synchronizer) ApplyVerticalScroll(v float64) {
	if s.main == nil {
		return
	}
	s.main.SetScrollTop(v)
	s.Sync()
}

// HandleZoom changes the day width and, once the layout has settled, restores
// the scroll position around anchor. AnchorRight (the default) keeps the left
// edge's content in place; AnchorLeft keeps the right edge's.
func (s *Synchronizer) HandleZoom(newDayWidth float64, anchor Anchor) {
	if s.main == nil || s.zoom == nil || newDayWidth <= 0 || s.zoom.DayWidth <= 0 {
		return
	}
	if anchor == "" {
		anchor = AnchorRight
	}

	ratio := newDayWidth / s.zoom.DayWidth
	currentLeft := s.main.ScrollLeft()
	currentRight := currentLeft + s.main.ClientWidth()

	s.logger.Debug("horizontal zoom", "from", s.zoom.DayWidth, "to", newDayWidth, "anchor", anchor)
	s.zoom.DayWidth = newDayWidth

	s.afterLayout(func() {
		if anchor == AnchorLeft {
			s.main.SetScrollLeft(currentRight*ratio - s.main.ClientWidth())
		} else {
			s.main.SetScrollLeft(currentLeft * ratio)
		}
		s.Sync()
	})
}

// HandleVerticalZoom is HandleZoom for the track height. AnchorBottom (the
// default) keeps the top edge's content in place; AnchorTop keeps the bottom
// edge's.
func (s *Synchronizer) HandleVerticalZoom(newTrackHeight float64, anchor Anchor) {
	if s.main == nil || s.zoom == nil || newTrackHeight <= 0 || s.zoom.TrackHeight <= 0 {
		return
	}
	if anchor == "" {
		anchor = AnchorBottom
	}

	ratio := newTrackHeight / s.zoom.TrackHeight
	currentTop := s.main.ScrollTop()
	currentBottom := currentTop + s.main.ClientHeight()

	s.logger.Debug("vertical zoom", "from", s.zoom.TrackHeight, "to", newTrackHeight, "anchor", anchor)
	s.zoom.TrackHeight = newTrackHeight

	s.afterLayout(func() {
		if anchor == AnchorTop {
			s.main.SetScrollTop(currentBottom*ratio - s.main.ClientHeight())
		} else {
			s.main.SetScrollTop(currentTop * ratio)
		}
		s.Sync()
	})
}

// UpdateScrollDimensions re-reads the main viewport's metrics without moving
// it. Use it after changes that alter the content size.
func (s *Synchronizer) UpdateScrollDimensions() {
	if s.main == nil {
		return
	}
	s.record()
}

func (s *Synchronizer) record() {
	s.horizontal = Horizontal{
		Left:   s.main.ScrollLeft(),
		Width:  s.main.ScrollWidth(),
		Client: s.main.ClientWidth(),
	}
	s.vertical = Vertical{
		Top:    s.main.ScrollTop(),
		Height: s.main.ScrollHeight(),
		Client: s.main.ClientHeight(),
	}
}

func (s *Synchronizer) afterLayout(fn func()) {
	if s.deferrer == nil {
		fn()
		return
	}
	s.deferrer.AfterLayout(fn)
}
