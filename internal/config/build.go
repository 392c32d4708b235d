package config

import (
	"fmt"
	"time"

	"github.com/javiermolinar/lanes/internal/dateutil"
	"github.com/javiermolinar/lanes/internal/interact"
	"github.com/javiermolinar/lanes/internal/timeline"
)

// BuildTimeline creates the editor's timeline from the configured groups,
// seed clips and day range. now resolves an empty start date.
func (c *Config) BuildTimeline(now time.Time) (*timeline.Timeline, error) {
	start, err := dateutil.TimelineStart(c.Timeline.StartDate, now)
	if err != nil {
		return nil, fmt.Errorf("start_date: %w", err)
	}
	days := dateutil.DaySequence(start, c.Timeline.Days)

	tracks := make([]timeline.Track, 0, len(c.Groups))
	for _, g := range c.Groups {
		tracks = append(tracks, timeline.NewTrack(g.Name, g.Icon, g.Color))
	}

	clips := make([]*timeline.Clip, 0, len(c.Clips))
	for _, cc := range c.Clips {
		if cc.Track < 0 || cc.Track >= len(tracks) {
			continue
		}
		label := cc.Label
		if label == "" {
			label = timeline.DefaultClipLabel
		}
		color := tracks[cc.Track].Color
		if color == "" {
			color = timeline.DefaultClipColor
		}
		clips = append(clips, &timeline.Clip{
			Label:         label,
			TrackIndex:    cc.Track,
			StartDay:      cc.Day,
			StartHour:     cc.Hour,
			DurationHours: cc.Duration,
			Color:         color,
		})
	}

	return timeline.New(days, tracks, clips), nil
}

// Zoom returns the initial zoom.
func (c *Config) Zoom() timeline.Zoom {
	return timeline.Zoom{
		DayWidth:    c.Timeline.DayWidth,
		TrackHeight: c.Timeline.TrackHeight,
	}
}

// Autoscroll returns the per-gesture autoscroll settings.
func (c *Config) Autoscroll() interact.AutoscrollConfig {
	return interact.AutoscrollConfig{
		Drag: interact.Autoscroll{
			Margin: c.Interaction.DragAutoscrollMargin,
			Speed:  c.Interaction.DragAutoscrollSpeed,
		},
		Resize: interact.Autoscroll{
			Margin: c.Interaction.ResizeAutoscrollMargin,
			Speed:  c.Interaction.ResizeAutoscrollSpeed,
		},
	}
}
