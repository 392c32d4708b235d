package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterState holds the strings needed to render the single footer line.
type FooterState struct {
	Width  int
	Prompt string // Rendered rename prompt; replaces the other fields when set
	Status string
	Help   string

	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// RenderFooter renders the status message on the left and the key hint on
// the right, or the prompt when one is open.
func RenderFooter(state FooterState) string {
	if state.Width <= 0 {
		return ""
	}
	if state.Prompt != "" {
		return PadLinesWithBackground(ansi.Truncate(state.Prompt, state.Width, ""), state.Width, 1, state.Bg)
	}

	help := state.HelpStyle.Render(state.Help)
	helpW := lipgloss.Width(help)
	statusW := max(0, state.Width-helpW-1)
	status := state.StatusStyle.Render(ansi.Truncate(state.Status, statusW, "…"))

	gap := max(0, state.Width-lipgloss.Width(status)-helpW)
	line := status + lipgloss.NewStyle().Background(state.Bg).Render(strings.Repeat(" ", gap)) + help
	return ansi.Truncate(line, state.Width, "")
}
