package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// KeyHelp is one line of the help overlay.
type KeyHelp struct {
	Keys string
	Desc string
}

// HelpSection groups related key bindings.
type HelpSection struct {
	Title string
	Keys  []KeyHelp
}

// HelpStyles are the styles the help overlay is drawn with.
type HelpStyles struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Desc  lipgloss.Style
}

// RenderHelp renders the key binding reference shown in the overlay.
func RenderHelp(sections []HelpSection, styles HelpStyles) string {
	keyW := 0
	for _, sec := range sections {
		for _, k := range sec.Keys {
			keyW = max(keyW, runewidth.StringWidth(k.Keys))
		}
	}

	var lines []string
	for i, sec := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, styles.Title.Render(sec.Title))
		for _, k := range sec.Keys {
			key := runewidth.FillRight(k.Keys, keyW)
			lines = append(lines, styles.Key.Render(key)+"  "+styles.Desc.Render(k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}
