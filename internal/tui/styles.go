package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/lanes/internal/tui/theme"
	"github.com/javiermolinar/lanes/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Title bar
	TitleStyle      lipgloss.Style
	TitleRangeStyle lipgloss.Style

	// Footer
	StatusStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style
	HelpStyle        lipgloss.Style

	// Rename prompt
	PromptLabelStyle  lipgloss.Style
	PromptTextStyle   lipgloss.Style
	PromptCursorStyle lipgloss.Style

	// Help overlay
	HelpTitleStyle lipgloss.Style
	HelpKeyStyle   lipgloss.Style
	HelpDescStyle  lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	bg := lipgloss.NewStyle().Background(p.Bg)

	return &Styles{
		palette: p,

		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextOnAccent).
			Background(p.Accent).
			Padding(0, 1),
		TitleRangeStyle: bg.Foreground(p.FgMuted).Padding(0, 1),

		StatusStyle:      bg.Foreground(p.Fg),
		StatusErrorStyle: bg.Foreground(p.Warning).Bold(true),
		HelpStyle:        bg.Foreground(p.FgMuted),

		PromptLabelStyle:  bg.Foreground(p.Accent).Bold(true),
		PromptTextStyle:   bg.Foreground(p.Fg),
		PromptCursorStyle: lipgloss.NewStyle().Foreground(p.Accent),

		HelpTitleStyle: lipgloss.NewStyle().Background(p.Modal.Bg).Foreground(p.Accent).Bold(true),
		HelpKeyStyle:   lipgloss.NewStyle().Background(p.Modal.Bg).Foreground(p.Modal.Text).Bold(true),
		HelpDescStyle:  lipgloss.NewStyle().Background(p.Modal.Bg).Foreground(p.Modal.Muted),
	}
}

// Palette returns the colors the styles were derived from.
func (s *Styles) Palette() *theme.Palette {
	return s.palette
}

func (s *Styles) gridColors() view.GridColors {
	return view.GridColors{
		Bg:        s.palette.Bg,
		WeekendBg: s.palette.WeekendBg,
		Line:      s.palette.BgSelection,
		Guide:     s.palette.Guide,
		Aligned:   s.palette.Aligned,
	}
}

func (s *Styles) rulerColors() view.RulerColors {
	return view.RulerColors{
		Bg:      s.palette.BgHighlight,
		Fg:      s.palette.Fg,
		Muted:   s.palette.FgMuted,
		Weekend: s.palette.Accent,
		Guide:   s.palette.Guide,
		Aligned: s.palette.Aligned,
	}
}

func (s *Styles) sidebarColors() view.SidebarColors {
	return view.SidebarColors{
		Bg:       s.palette.BgHighlight,
		Fg:       s.palette.Fg,
		Muted:    s.palette.FgMuted,
		ActiveBg: s.palette.BgSelection,
	}
}

func (s *Styles) helpStyles() view.HelpStyles {
	return view.HelpStyles{
		Title: s.HelpTitleStyle,
		Key:   s.HelpKeyStyle,
		Desc:  s.HelpDescStyle,
	}
}
