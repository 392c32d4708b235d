package timeline

import "math"

// Zoom holds the mutable zoom levels of a view.
type Zoom struct {
	DayWidth    float64 // Cells per day
	TrackHeight float64 // Rows per track
}

// Mapper converts between grid space (cells and rows) and clip placement
// (day, hour, track, duration) at a fixed zoom.
type Mapper struct {
	DayWidth    float64
	TrackHeight float64
	Days        int
	Tracks      int
}

// Mapper returns a mapper for the timeline's current extent at zoom z.
func (tl *Timeline) Mapper(z Zoom) Mapper {
	return Mapper{
		DayWidth:    z.DayWidth,
		TrackHeight: z.TrackHeight,
		Days:        tl.DayCount(),
		Tracks:      tl.TrackCount(),
	}
}

// HourWidth is the width of one hour-grid-unit.
func (m Mapper) HourWidth() float64 {
	return m.DayWidth / HoursPerDay
}

// ClipX returns the left edge of the clip.
func (m Mapper) ClipX(c *Clip) float64 {
	return float64(c.StartDay)*m.DayWidth + c.StartHour*m.HourWidth()
}

// ClipWidth returns the width of the clip.
func (m Mapper) ClipWidth(c *Clip) float64 {
	return c.DurationHours * m.HourWidth()
}

// ClipY returns the top edge of the clip's track row.
func (m Mapper) ClipY(c *Clip) float64 {
	return float64(c.TrackIndex) * m.TrackHeight
}

// ContentWidth is the full width of the day span.
func (m Mapper) ContentWidth() float64 {
	return float64(m.Days) * m.DayWidth
}

// ContentHeight is the full height of all tracks.
func (m Mapper) ContentHeight() float64 {
	return float64(m.Tracks) * m.TrackHeight
}

// TrackAt returns the track row containing y, or -1 outside the tracks.
func (m Mapper) TrackAt(y float64) int {
	if m.TrackHeight <= 0 || y < 0 {
		return -1
	}
	idx := int(math.Floor(y / m.TrackHeight))
	if idx >= m.Tracks {
		return -1
	}
	return idx
}

// HourAt returns the absolute hour (from the origin) under x, snapped down
// to a whole hour-grid-unit.
func (m Mapper) HourAt(x float64) int {
	hw := m.HourWidth()
	if hw <= 0 || x < 0 {
		return 0
	}
	return int(math.Floor(x / hw))
}

// ApplyPixels snaps x and y to the grid and writes the resulting day, hour and
// track into c. Out-of-range input is clamped.
func (m Mapper) ApplyPixels(c *Clip, x, y float64) {
	m.apply(c, x, y, nil)
}

// ApplyPixelsWidth is ApplyPixels plus a new duration derived from width.
func (m Mapper) ApplyPixelsWidth(c *Clip, x, y, width float64) {
	m.apply(c, x, y, &width)
}

func (m Mapper) apply(c *Clip, x, y float64, width *float64) {
	hw := m.HourWidth()
	if c == nil || hw <= 0 || m.TrackHeight <= 0 {
		return
	}

	total := int(round(x / hw))
	c.StartDay = max(0, floorDiv(total, HoursPerDay))
	c.StartHour = float64(max(0, total%HoursPerDay))
	c.TrackIndex = max(0, min(int(round(y/m.TrackHeight)), m.Tracks-1))

	if width != nil {
		c.DurationHours = math.Max(MinDurationHours, round(*width/hw))
	}
}

// round rounds half up, the same way for positive and negative halves.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
