package timeline

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// DefaultTrackColor is the color of tracks created from the editor.
	DefaultTrackColor = "#5c6bc0"
	// DefaultTrackIcon is the icon of tracks created from the editor.
	DefaultTrackIcon = "layers"
)

// Track is a horizontal lane holding clips.
// A track's position in the timeline is the TrackIndex its clips refer to.
type Track struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

// NewTrack creates a track with a fresh id.
// Empty icon and color fall back to the editor defaults.
func NewTrack(name, icon, color string) Track {
	if icon == "" {
		icon = DefaultTrackIcon
	}
	if color == "" {
		color = DefaultTrackColor
	}
	return Track{
		ID:    uuid.NewString(),
		Name:  name,
		Icon:  icon,
		Color: color,
	}
}

func newTrackName(count int) string {
	return fmt.Sprintf("New Track %d", count+1)
}
