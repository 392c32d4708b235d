package timeline

import "slices"

const (
	// DefaultClipLabel is the label of clips created from the editor.
	DefaultClipLabel = "New Clip"
	// DefaultClipStartHour is where new clips start within day 0.
	DefaultClipStartHour = 4
	// DefaultClipDuration is the duration of new clips in hours.
	DefaultClipDuration = 12

	copySuffix = " (copy)"
)

// AddClip appends a new clip on trackIndex starting at startHour of day 0.
// The clip takes its track's color, or DefaultClipColor when the track has
// none. A missing track adds nothing and returns false, so no clip ever points
// past the last track.
func (tl *Timeline) AddClip(trackIndex int, startHour float64) (*Clip, bool) {
	track, ok := tl.Track(trackIndex)
	if !ok {
		return nil, false
	}

	color := track.Color
	if color == "" {
		color = DefaultClipColor
	}

	c := &Clip{
		ID:            NewClipID(),
		Label:         DefaultClipLabel,
		TrackIndex:    trackIndex,
		StartDay:      0,
		StartHour:     max(0, startHour),
		DurationHours: DefaultClipDuration,
		Color:         color,
	}
	Normalize(c)

	tl.clips = append(tl.clips, c)
	tl.Notify()
	return c, true
}

// DuplicateClip appends a copy of the clip placed right after it in time.
// Returns false if the clip does not exist.
func (tl *Timeline) DuplicateClip(id ClipID) (*Clip, bool) {
	src, ok := tl.Clip(id)
	if !ok {
		return nil, false
	}

	c := src.Clone()
	c.ID = NewClipID()
	c.Label = src.Label + copySuffix
	c.StartHour = src.StartHour + src.DurationHours
	Normalize(c)

	tl.clips = append(tl.clips, c)
	tl.Notify()
	return c, true
}

// RemoveClip deletes the clip with id. Unknown ids are ignored.
func (tl *Timeline) RemoveClip(id ClipID) bool {
	idx := slices.IndexFunc(tl.clips, func(c *Clip) bool { return c.ID == id })
	if idx < 0 {
		return false
	}

	tl.clips = slices.Delete(tl.clips, idx, idx+1)
	if tl.hasSelected && tl.selected == id {
		tl.ClearSelection()
	}
	tl.Notify()
	return true
}

// RenameClip changes a clip's label. Unknown ids are ignored.
func (tl *Timeline) RenameClip(id ClipID, label string) bool {
	c, ok := tl.Clip(id)
	if !ok {
		return false
	}
	c.Label = label
	tl.Notify()
	return true
}
