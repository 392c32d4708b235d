package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/lanes/internal/interact"
	"github.com/javiermolinar/lanes/internal/tui/theme"
	"github.com/javiermolinar/lanes/internal/tui/view"
)

// minGridWidth is the narrowest grid worth drawing.
const minGridWidth = 10

// View renders the TUI.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	help := ""
	if m.overlay.Active() {
		help = view.RenderHelp(helpSections(), m.styles.helpStyles())
	}
	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		OverlayContent:   help,
		ShowOverlay:      m.overlay.Active(),
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	l := m.layout
	bg := m.styles.Palette().Bg
	if l.GridW < minGridWidth || l.GridH <= 0 {
		return view.PlaceBox(m.width, m.height, lipgloss.Center, m.styles.HelpStyle.Render("Terminal too small"), bg)
	}

	ruler := view.RenderRuler(view.RulerState{
		Width:    l.GridW,
		Left:     int(math.Floor(m.header.ScrollLeft())),
		DayWidth: m.zoom.DayWidth,
		Days:     m.timeline.Days(),
		Guides:   m.guideMarks(),
		Colors:   m.styles.rulerColors(),
	})
	corner := view.PadLinesWithBackground("", l.SidebarW, view.RulerHeight, m.styles.Palette().BgHighlight)

	sidebar := view.RenderSidebar(m.sidebarState())
	grid := view.RenderGrid(m.gridState())

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		lipgloss.JoinHorizontal(lipgloss.Top, corner, ruler),
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, grid),
		m.renderFooter(),
	)
	return view.PadLinesWithBackground(content, m.width, m.height, bg)
}

func (m Model) renderTitle() string {
	title := m.styles.TitleStyle.Render("lanes")
	days := m.timeline.Days()
	rng := ""
	if len(days) > 0 {
		rng = fmt.Sprintf("%s → %s", days[0].Format("Mon 02 Jan 2006"), days[len(days)-1].Format("Mon 02 Jan 2006"))
	}
	line := title + m.styles.TitleRangeStyle.Render(rng)
	return ansi.Truncate(line, m.width, "")
}

func (m Model) sidebarState() view.SidebarState {
	tracks := m.timeline.Tracks()
	out := make([]view.SidebarTrack, len(tracks))
	for i, tr := range tracks {
		out[i] = view.SidebarTrack{
			Name:   tr.Name,
			Icon:   tr.Icon,
			Color:  theme.Color(tr.Color),
			Clips:  len(m.timeline.ClipsOnTrack(i)),
			Active: i == m.track,
		}
	}
	return view.SidebarState{
		Width:       m.layout.SidebarW,
		Height:      m.layout.GridH,
		Top:         int(math.Floor(m.sidebar.ScrollTop())),
		TrackHeight: m.zoom.TrackHeight,
		Tracks:      out,
		Colors:      m.styles.sidebarColors(),
	}
}

func (m Model) renderFooter() string {
	state := view.FooterState{
		Width:       m.width,
		Status:      m.statusText(),
		Help:        "? help  q quit",
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.Palette().Bg,
	}
	if m.statusError {
		state.StatusStyle = m.styles.StatusErrorStyle
	}
	if m.mode == ModePrompt {
		state.Prompt = m.prompt.View()
	}
	return view.RenderFooter(state)
}

// statusText is the footer message: a pending status, the clip under
// manipulation, or a summary of the timeline.
func (m Model) statusText() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}

	if id, ok := m.core.State().DraggingID(); ok {
		if c, ok := m.timeline.Clip(id); ok {
			verb := "Moving"
			if m.core.Phase() == interact.PhaseResizing {
				verb = "Resizing"
			}
			start := m.clipTime(c.StartHours())
			return fmt.Sprintf("%s %s · %s · %s", verb, c.Label, start.Format("Mon 02 Jan 15:04"), formatHours(c.DurationHours))
		}
	}

	parts := []string{
		plural(len(m.timeline.Clips()), "clip"),
		plural(m.timeline.TrackCount(), "track"),
		fmt.Sprintf("zoom %g×%g", m.zoom.DayWidth, m.zoom.TrackHeight),
	}
	if c, ok := m.timeline.Selected(); ok {
		parts = append(parts, "selected "+c.Label)
	}
	return strings.Join(parts, " · ")
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
