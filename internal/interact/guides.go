package interact

import (
	"math"

	"github.com/javiermolinar/lanes/internal/timeline"
)

// computeGuides returns the left and right edge guides of active at its
// current geometry. A guide is aligned when any other clip has an edge within
// half an hour-grid-unit of it.
func computeGuides(tl *timeline.Timeline, m timeline.Mapper, active *timeline.Clip) []Guide {
	x := m.ClipX(active)
	w := m.ClipWidth(active)
	guides := []Guide{
		{X: x, Edge: GuideLeft},
		{X: x + w, Edge: GuideRight},
	}

	tolerance := m.HourWidth() / 2
	for _, other := range tl.Clips() {
		if other.ID == active.ID {
			continue
		}
		ox := m.ClipX(other)
		edges := [2]float64{ox, ox + m.ClipWidth(other)}
		for i := range guides {
			for _, e := range edges {
				if math.Abs(guides[i].X-e) < tolerance {
					guides[i].Aligned = true
				}
			}
		}
	}
	return guides
}
