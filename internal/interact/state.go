// Package interact implements the drag and resize interaction core: it turns
// pointer gesture steps into snapped clip placement on the timeline.
package interact

import (
	"slices"

	"github.com/javiermolinar/lanes/internal/timeline"
)

// GuideEdge names the clip edge a guide is drawn for.
type GuideEdge int

const (
	GuideLeft GuideEdge = iota
	GuideRight
)

// Guide is a vertical alignment line shown while a clip is manipulated.
// Guides are display-only; they never move the clip.
type Guide struct {
	X       float64
	Edge    GuideEdge
	Aligned bool // Another clip has an edge on the same grid line
}

// State is the interaction state shared with the view: which clip is being
// manipulated and which guides are visible. Only the Core that owns it
// mutates it, and it is cleared when every gesture ends.
type State struct {
	draggingID timeline.ClipID
	dragging   bool
	guides     []Guide
}

// NewState returns an empty interaction state.
func NewState() *State {
	return &State{}
}

// DraggingID returns the clip currently being manipulated.
func (s *State) DraggingID() (timeline.ClipID, bool) {
	return s.draggingID, s.dragging
}

// Dragging reports whether a gesture owns the state.
func (s *State) Dragging() bool {
	return s.dragging
}

// Guides returns the active guides, or nil when none are shown.
func (s *State) Guides() []Guide {
	return slices.Clone(s.guides)
}

func (s *State) begin(id timeline.ClipID) {
	s.draggingID = id
	s.dragging = true
	s.guides = nil
}

func (s *State) setGuides(g []Guide) {
	s.guides = g
}

func (s *State) clear() {
	s.draggingID = 0
	s.dragging = false
	s.guides = nil
}
