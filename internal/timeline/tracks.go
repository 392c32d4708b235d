package timeline

import "slices"

// AddTrack inserts a new track at atIndex, shifting every clip on that track
// or later one row down. A negative atIndex appends without touching clips.
func (tl *Timeline) AddTrack(atIndex int) Track {
	track := NewTrack(newTrackName(len(tl.tracks)), DefaultTrackIcon, DefaultTrackColor)

	if atIndex < 0 || atIndex >= len(tl.tracks) {
		tl.tracks = append(tl.tracks, track)
		tl.Notify()
		return track
	}

	tl.tracks = slices.Insert(tl.tracks, atIndex, track)
	for _, c := range tl.clips {
		if c.TrackIndex >= atIndex {
			c.TrackIndex++
		}
	}
	tl.Notify()
	return track
}

// RemoveTrack deletes the track at index together with all of its clips.
// Clips on later tracks move up one row. Out-of-range indexes are ignored.
func (tl *Timeline) RemoveTrack(index int) bool {
	if index < 0 || index >= len(tl.tracks) {
		return false
	}

	// Clips are filtered and reindexed against the ordering before removal.
	tl.clips = slices.DeleteFunc(tl.clips, func(c *Clip) bool {
		return c.TrackIndex == index
	})
	for _, c := range tl.clips {
		if c.TrackIndex > index {
			c.TrackIndex--
		}
	}
	tl.tracks = slices.Delete(tl.tracks, index, index+1)

	if _, ok := tl.Selected(); !ok {
		tl.ClearSelection()
	}
	tl.Notify()
	return true
}

// MoveTrack moves the track at index by direction rows. Only clips on the two
// exchanged positions are touched: they swap track indexes. Moves that would
// leave the track list are ignored.
func (tl *Timeline) MoveTrack(index, direction int) bool {
	newIndex := index + direction
	if index < 0 || index >= len(tl.tracks) || newIndex < 0 || newIndex >= len(tl.tracks) || direction == 0 {
		return false
	}

	moved := tl.tracks[index]
	tl.tracks = slices.Delete(tl.tracks, index, index+1)
	tl.tracks = slices.Insert(tl.tracks, newIndex, moved)

	for _, c := range tl.clips {
		switch c.TrackIndex {
		case index:
			c.TrackIndex = newIndex
		case newIndex:
			c.TrackIndex = index
		}
	}
	tl.Notify()
	return true
}

// RenameTrack changes the name of the track at index.
func (tl *Timeline) RenameTrack(index int, name string) bool {
	if index < 0 || index >= len(tl.tracks) {
		return false
	}
	tl.tracks[index].Name = name
	tl.Notify()
	return true
}
