package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lanes/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reflow()
		return m, nil

	case commands.LayoutSettledMsg:
		// Zoom callbacks restore the scroll position against the new
		// content size, so lay out first.
		m.reflow()
		m.layoutQ.Flush()
		return m, nil

	case commands.AutoscrollTickMsg:
		return m.handleAutoscrollTick()

	case commands.ErrMsg:
		return m, m.setError(msg.Err)

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusError = false
		}
		return m, nil
	}

	// Forward everything else (cursor blink) to the prompt when open.
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}
