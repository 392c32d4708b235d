package timeline

import (
	"slices"
	"time"
)

// ChangeFunc observes the clip collection after a change.
// The slice is a fresh copy on every call, so observers can compare by identity.
type ChangeFunc func(clips []*Clip)

// Timeline owns the ordered tracks, the clips placed on them and the day
// sequence that defines the horizontal extent.
type Timeline struct {
	days   []time.Time
	tracks []Track
	clips  []*Clip

	selected    ClipID
	hasSelected bool

	observers []ChangeFunc
}

// New creates a timeline. Seed clips are normalized; clips that reference a
// track that does not exist are dropped.
func New(days []time.Time, tracks []Track, clips []*Clip) *Timeline {
	tl := &Timeline{
		days:   slices.Clone(days),
		tracks: slices.Clone(tracks),
	}
	for _, c := range clips {
		if c == nil || c.TrackIndex < 0 || c.TrackIndex >= len(tracks) {
			continue
		}
		cp := c.Clone()
		if cp.ID == 0 {
			cp.ID = NewClipID()
		}
		if cp.DurationHours < MinDurationHours {
			cp.DurationHours = MinDurationHours
		}
		if cp.StartHour < 0 {
			cp.StartHour = 0
		}
		if cp.StartDay < 0 {
			cp.StartDay = 0
		}
		Normalize(cp)
		tl.clips = append(tl.clips, cp)
	}
	return tl
}

// OnChange registers an observer for clip collection changes.
func (tl *Timeline) OnChange(fn ChangeFunc) {
	if fn != nil {
		tl.observers = append(tl.observers, fn)
	}
}

// Notify emits a change notification with a fresh shallow copy of the clips.
func (tl *Timeline) Notify() {
	for _, fn := range tl.observers {
		fn(tl.Clips())
	}
}

// Days returns the day sequence.
func (tl *Timeline) Days() []time.Time {
	return slices.Clone(tl.days)
}

// DayCount returns the number of days on the timeline.
func (tl *Timeline) DayCount() int {
	return len(tl.days)
}

// Tracks returns a copy of the ordered tracks.
func (tl *Timeline) Tracks() []Track {
	return slices.Clone(tl.tracks)
}

// Track returns the track at index.
func (tl *Timeline) Track(index int) (Track, bool) {
	if index < 0 || index >= len(tl.tracks) {
		return Track{}, false
	}
	return tl.tracks[index], true
}

// TrackCount returns the number of tracks.
func (tl *Timeline) TrackCount() int {
	return len(tl.tracks)
}

// Clips returns a shallow copy of the clip collection.
func (tl *Timeline) Clips() []*Clip {
	return slices.Clone(tl.clips)
}

// ClipsOnTrack returns the clips whose TrackIndex is index, in insertion order.
func (tl *Timeline) ClipsOnTrack(index int) []*Clip {
	var out []*Clip
	for _, c := range tl.clips {
		if c.TrackIndex == index {
			out = append(out, c)
		}
	}
	return out
}

// Clip looks up a clip by id.
func (tl *Timeline) Clip(id ClipID) (*Clip, bool) {
	for _, c := range tl.clips {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Select marks a clip as selected. Unknown ids clear the selection.
func (tl *Timeline) Select(id ClipID) {
	if _, ok := tl.Clip(id); !ok {
		tl.ClearSelection()
		return
	}
	tl.selected = id
	tl.hasSelected = true
}

// ClearSelection drops the selected clip.
func (tl *Timeline) ClearSelection() {
	tl.selected = 0
	tl.hasSelected = false
}

// Selected returns the selected clip, if it still exists.
func (tl *Timeline) Selected() (*Clip, bool) {
	if !tl.hasSelected {
		return nil, false
	}
	return tl.Clip(tl.selected)
}
