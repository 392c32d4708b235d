package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lanes/internal/interact"
	"github.com/javiermolinar/lanes/internal/scroll"
	"github.com/javiermolinar/lanes/internal/timeline"
	"github.com/javiermolinar/lanes/internal/tui/commands"
	"github.com/javiermolinar/lanes/internal/tui/view"
)

// Zoom bounds. Horizontal zoom doubles or halves the day width.
const (
	minDayWidth    = 6
	maxDayWidth    = 384
	minTrackHeight = 1
	maxTrackHeight = 8
)

var errEmptyName = errors.New("name cannot be empty")

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.mode == ModePrompt {
		return m.handlePromptKeys(msg)
	}
	if m.overlay.Active() {
		switch msg.String() {
		case "?", "esc", "q":
			m.overlay.Toggle()
		}
		return m, nil
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.overlay.Toggle()
	case "esc":
		m.timeline.ClearSelection()

	// Scrolling
	case "h", "left":
		m.scrollBy(-m.horizontalStep(), 0)
	case "l", "right":
		m.scrollBy(m.horizontalStep(), 0)
	case "k", "up":
		m.scrollBy(0, -m.zoom.TrackHeight)
	case "j", "down":
		m.scrollBy(0, m.zoom.TrackHeight)
	case "g", "home":
		m.sync.ApplyScroll(0)
	case "G", "end":
		m.sync.ApplyScroll(m.main.ScrollWidth())

	// Zoom
	case "+", "=":
		return m, m.zoomHorizontal(2, scroll.AnchorRight)
	case "-", "_":
		return m, m.zoomHorizontal(0.5, scroll.AnchorRight)
	case "}":
		return m, m.zoomHorizontal(2, scroll.AnchorLeft)
	case "{":
		return m, m.zoomHorizontal(0.5, scroll.AnchorLeft)
	case ">":
		return m, m.zoomVertical(1, scroll.AnchorBottom)
	case "<":
		return m, m.zoomVertical(-1, scroll.AnchorBottom)

	// Track focus
	case "tab":
		m.focusTrack(m.track + 1)
	case "shift+tab":
		m.focusTrack(m.track - 1)

	// Clips
	case "a":
		return m, m.addClip()
	case "d":
		return m, m.duplicateClip()
	case "x", "delete":
		return m, m.removeClip()
	case "r":
		return m, m.openClipRename()
	case "y":
		return m, m.copyClips()

	// Tracks
	case "t":
		return m, m.addTrack(-1)
	case "i":
		return m, m.addTrack(m.track)
	case "D":
		return m, m.removeTrack()
	case "K":
		return m, m.moveTrack(-1)
	case "J":
		return m, m.moveTrack(1)
	case "R":
		return m, m.openTrackRename()
	}
	return m, nil
}

// handlePromptKeys handles keys while the rename prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.prompt.Value())
		m.closePrompt()
		if name == "" {
			return m, m.setError(errEmptyName)
		}
		return m, m.applyRename(name)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) horizontalStep() float64 {
	return max(1, m.zoom.DayWidth/4)
}

func (m *Model) scrollBy(dx, dy float64) {
	if dx != 0 {
		m.sync.ApplyScroll(m.main.ScrollLeft() + dx)
	}
	if dy != 0 {
		m.sync.ApplyVerticalScroll(m.main.ScrollTop() + dy)
	}
}

// zoomHorizontal scales the day width by factor. The scroll position is
// restored once the new layout has been rendered. Zoom is refused during a
// gesture because the gesture accumulates cells at the current scale.
func (m *Model) zoomHorizontal(factor float64, anchor scroll.Anchor) tea.Cmd {
	if m.core.Phase() != interact.PhaseIdle {
		return m.setStatus("Release the mouse to zoom")
	}
	next := max(minDayWidth, min(maxDayWidth, m.zoom.DayWidth*factor))
	if next == m.zoom.DayWidth {
		return m.setStatus("Zoom limit reached")
	}
	m.sync.HandleZoom(next, anchor)
	m.reflow()
	return commands.LayoutSettled()
}

// zoomVertical changes the track height by delta rows.
func (m *Model) zoomVertical(delta float64, anchor scroll.Anchor) tea.Cmd {
	if m.core.Phase() != interact.PhaseIdle {
		return m.setStatus("Release the mouse to zoom")
	}
	next := max(minTrackHeight, min(maxTrackHeight, m.zoom.TrackHeight+delta))
	if next == m.zoom.TrackHeight {
		return m.setStatus("Zoom limit reached")
	}
	m.sync.HandleVerticalZoom(next, anchor)
	m.reflow()
	return commands.LayoutSettled()
}

func (m *Model) focusTrack(index int) {
	n := m.timeline.TrackCount()
	if n == 0 {
		return
	}
	m.track = (index%n + n) % n
	m.revealRows(m.mapper().TrackHeight*float64(m.track), m.mapper().TrackHeight)
}

func (m *Model) selectClip(c *timeline.Clip) {
	m.timeline.Select(c.ID)
	m.track = c.TrackIndex
}

// revealClip scrolls the grid so that the start of c is visible.
func (m *Model) revealClip(c *timeline.Clip) {
	mapper := m.mapper()
	x, w := mapper.ClipX(c), mapper.ClipWidth(c)
	left, client := m.main.ScrollLeft(), m.main.ClientWidth()
	if x < left || x+min(w, client) > left+client {
		m.sync.ApplyScroll(x - mapper.HourWidth())
	}
	m.revealRows(mapper.ClipY(c), mapper.TrackHeight)
}

func (m *Model) revealRows(y, h float64) {
	top, client := m.main.ScrollTop(), m.main.ClientHeight()
	switch {
	case y < top:
		m.sync.ApplyVerticalScroll(y)
	case y+h > top+client:
		m.sync.ApplyVerticalScroll(y + h - client)
	}
}

func (m *Model) addClip() tea.Cmd {
	start := float64(m.mapper().HourAt(m.main.ScrollLeft())) + timeline.DefaultClipStartHour
	c, ok := m.timeline.AddClip(m.track, start)
	if !ok {
		return m.setStatus("Add a track first")
	}
	m.logger.Info("clip added", "clip", c.ID, "track", c.TrackIndex)
	m.selectClip(c)
	m.revealClip(c)
	return m.setStatus("Added " + c.Label)
}

func (m *Model) duplicateClip() tea.Cmd {
	sel, ok := m.timeline.Selected()
	if !ok {
		return m.setStatus("No clip selected")
	}
	c, _ := m.timeline.DuplicateClip(sel.ID)
	m.logger.Info("clip duplicated", "from", sel.ID, "clip", c.ID)
	m.selectClip(c)
	m.revealClip(c)
	return m.setStatus("Duplicated " + sel.Label)
}

func (m *Model) removeClip() tea.Cmd {
	sel, ok := m.timeline.Selected()
	if !ok {
		return m.setStatus("No clip selected")
	}
	m.timeline.RemoveClip(sel.ID)
	m.logger.Info("clip removed", "clip", sel.ID)
	return m.setStatus("Deleted " + sel.Label)
}

func (m *Model) addTrack(at int) tea.Cmd {
	tr := m.timeline.AddTrack(at)
	m.logger.Info("track added", "track", tr.ID, "at", at)
	if at < 0 || at >= m.timeline.TrackCount()-1 {
		at = m.timeline.TrackCount() - 1
	}
	m.reflow()
	m.focusTrack(at)
	return m.setStatus("Added " + tr.Name)
}

func (m *Model) removeTrack() tea.Cmd {
	tr, ok := m.timeline.Track(m.track)
	if !ok {
		return m.setStatus("No track to delete")
	}
	m.timeline.RemoveTrack(m.track)
	m.logger.Info("track removed", "track", tr.ID, "index", m.track)
	m.reflow()
	return m.setStatus("Deleted " + tr.Name)
}

func (m *Model) moveTrack(direction int) tea.Cmd {
	if !m.timeline.MoveTrack(m.track, direction) {
		return commands.Status("Track cannot move further")
	}
	m.logger.Info("track moved", "from", m.track, "direction", direction)
	m.focusTrack(m.track + direction)
	return nil
}

func (m *Model) openClipRename() tea.Cmd {
	sel, ok := m.timeline.Selected()
	if !ok {
		return m.setStatus("No clip selected")
	}
	m.renameKind = renameClip
	m.renameClipID = sel.ID
	return m.openPrompt("Rename clip: ", sel.Label)
}

func (m *Model) openTrackRename() tea.Cmd {
	tr, ok := m.timeline.Track(m.track)
	if !ok {
		return m.setStatus("No track selected")
	}
	m.renameKind = renameTrack
	m.renameTrack = m.track
	return m.openPrompt("Rename track: ", tr.Name)
}

func (m *Model) openPrompt(label, value string) tea.Cmd {
	m.mode = ModePrompt
	m.prompt.Prompt = label
	m.prompt.SetValue(value)
	m.prompt.CursorEnd()
	return m.prompt.Focus()
}

func (m *Model) closePrompt() {
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.Reset()
}

func (m *Model) applyRename(name string) tea.Cmd {
	switch m.renameKind {
	case renameTrack:
		if !m.timeline.RenameTrack(m.renameTrack, name) {
			return m.setStatus("Track no longer exists")
		}
	default:
		if !m.timeline.RenameClip(m.renameClipID, name) {
			return m.setStatus("Clip no longer exists")
		}
	}
	return m.setStatus("Renamed to " + name)
}

func (m *Model) copyClips() tea.Cmd {
	if sel, ok := m.timeline.Selected(); ok {
		return commands.CopyToClipboard(m.clipboard, m.clipSummary(sel), "clip")
	}
	clips := m.timeline.Clips()
	if len(clips) == 0 {
		return m.setStatus("Nothing to copy")
	}
	lines := make([]string, len(clips))
	for i, c := range clips {
		lines[i] = m.clipSummary(c)
	}
	return commands.CopyToClipboard(m.clipboard, strings.Join(lines, "\n"), fmt.Sprintf("%d clips", len(clips)))
}

// clipSummary formats a clip as a tab-separated line:
// label, track, start, end, duration.
func (m Model) clipSummary(c *timeline.Clip) string {
	track := ""
	if tr, ok := m.timeline.Track(c.TrackIndex); ok {
		track = tr.Name
	}
	start := m.clipTime(c.StartHours())
	end := m.clipTime(c.EndHours())
	return strings.Join([]string{
		c.Label,
		track,
		start.Format("2006-01-02 15:04"),
		end.Format("2006-01-02 15:04"),
		formatHours(c.DurationHours),
	}, "\t")
}

// clipTime converts hours since the first day to a wall-clock time.
func (m Model) clipTime(hours float64) time.Time {
	var first time.Time
	if days := m.timeline.Days(); len(days) > 0 {
		first = days[0]
	}
	return first.Add(time.Duration(hours * float64(time.Hour)))
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

func helpSections() []view.HelpSection {
	return []view.HelpSection{
		{Title: "Clips", Keys: []view.KeyHelp{
			{Keys: "mouse", Desc: "drag to move, drag an edge to resize"},
			{Keys: "a", Desc: "add clip on focused track"},
			{Keys: "d", Desc: "duplicate selected clip"},
			{Keys: "x", Desc: "delete selected clip"},
			{Keys: "r", Desc: "rename selected clip"},
			{Keys: "y", Desc: "copy clip (or all clips)"},
			{Keys: "esc", Desc: "clear selection"},
		}},
		{Title: "Tracks", Keys: []view.KeyHelp{
			{Keys: "tab/S-tab", Desc: "focus next/previous track"},
			{Keys: "t / i", Desc: "append / insert track"},
			{Keys: "D", Desc: "delete focused track"},
			{Keys: "K / J", Desc: "move track up / down"},
			{Keys: "R", Desc: "rename focused track"},
		}},
		{Title: "View", Keys: []view.KeyHelp{
			{Keys: "hjkl/arrows", Desc: "scroll"},
			{Keys: "+ / -", Desc: "zoom days in / out"},
			{Keys: "} / {", Desc: "zoom keeping right edge"},
			{Keys: "> / <", Desc: "taller / shorter tracks"},
			{Keys: "?", Desc: "toggle help"},
			{Keys: "q", Desc: "quit"},
		}},
	}
}
