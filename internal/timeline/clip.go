// Package timeline defines the core domain types for lanes: tracks, clips and
// the coordinate mapping between grid cells and clip placement.
package timeline

import (
	"errors"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrInvalidClipID is returned when an element id does not name a clip.
var ErrInvalidClipID = errors.New("invalid clip id")

const (
	// HoursPerDay is the number of hour-grid-units in a day.
	HoursPerDay = 24

	// MinDurationHours is the shortest duration a clip can have.
	// It is finer than the one-hour snap grid on purpose.
	MinDurationHours = 0.5

	// DefaultClipColor is used when a new clip's track has no color.
	DefaultClipColor = "#3949ab"

	clipElementPrefix = "clip-"
)

// ClipID identifies a clip. Ids are a millisecond timestamp plus a random
// fraction, so they are not integers.
type ClipID float64

var (
	idMu   sync.Mutex
	lastID float64
)

// NewClipID returns a fresh id based on the current time. Ids handed out by
// this process strictly increase, so rapid creation never collides.
func NewClipID() ClipID {
	v := float64(time.Now().UnixMilli()) + rand.Float64()

	idMu.Lock()
	defer idMu.Unlock()
	if v <= lastID {
		v = math.Nextafter(lastID, math.Inf(1))
	}
	lastID = v
	return ClipID(v)
}

// String formats the id without loss of its fractional part.
func (id ClipID) String() string {
	return strconv.FormatFloat(float64(id), 'f', -1, 64)
}

// ElementID returns the view element id for the clip ("clip-<id>").
func (id ClipID) ElementID() string {
	return clipElementPrefix + id.String()
}

// ParseClipID parses an element id ("clip-<id>") or a bare id.
// Fractional ids are accepted.
func ParseClipID(s string) (ClipID, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), clipElementPrefix)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidClipID
	}
	return ClipID(v), nil
}

// Clip is a time-boxed item placed on a track.
type Clip struct {
	ID            ClipID
	Label         string
	TrackIndex    int     // Position of the owning track
	StartDay      int     // Day offset from the timeline origin
	StartHour     float64 // 0 <= StartHour < 24
	DurationHours float64 // >= MinDurationHours
	Color         string  // Copied from the track at creation time
}

// Clone returns a deep copy of the clip.
func (c *Clip) Clone() *Clip {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// StartHours returns the absolute start of the clip in hours from the origin.
func (c *Clip) StartHours() float64 {
	return float64(c.StartDay)*HoursPerDay + c.StartHour
}

// EndHours returns the absolute end of the clip in hours from the origin.
func (c *Clip) EndHours() float64 {
	return c.StartHours() + c.DurationHours
}

// Normalize carries any StartHour overflow into StartDay, keeping the
// absolute position on the timeline unchanged.
func Normalize(c *Clip) {
	if c == nil || c.StartHour < HoursPerDay {
		return
	}
	days := math.Floor(c.StartHour / HoursPerDay)
	c.StartDay += int(days)
	c.StartHour = math.Mod(c.StartHour, HoursPerDay)
}
