// Package commands provides TUI command constructors and message types.
package commands

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LayoutSettledMsg is sent once the view has been laid out after a change
// that alters the content size.
type LayoutSettledMsg struct{}

// AutoscrollTickMsg drives autoscroll while a gesture holds the pointer near
// a grid edge.
type AutoscrollTickMsg struct{}

// AutoscrollInterval is the delay between autoscroll steps.
const AutoscrollInterval = 40 * time.Millisecond

// Status reports a temporary status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter clears the status message after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// LayoutSettled reports that the pending layout pass has been rendered.
// Bubble Tea delivers the message after the view for the current update.
func LayoutSettled() tea.Cmd {
	return func() tea.Msg {
		return LayoutSettledMsg{}
	}
}

// AutoscrollTick schedules the next autoscroll step.
func AutoscrollTick() tea.Cmd {
	return tea.Tick(AutoscrollInterval, func(time.Time) tea.Msg {
		return AutoscrollTickMsg{}
	})
}

// ClipboardWriter writes text to the system clipboard.
type ClipboardWriter func(text string) error

// SystemClipboard writes to the system clipboard.
var SystemClipboard ClipboardWriter = clipboard.WriteAll

// CopyToClipboard copies text and reports the outcome as a status message.
func CopyToClipboard(write ClipboardWriter, text, what string) tea.Cmd {
	return func() tea.Msg {
		if write == nil {
			write = SystemClipboard
		}
		if err := write(text); err != nil {
			return ErrMsg{Err: err}
		}
		return StatusMsgCmd{Msg: "Copied " + what + " to clipboard"}
	}
}
