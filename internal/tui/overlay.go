package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	overlayPadX = 3
	overlayPadY = 1
)

// OverlayModel renders an opaque box centered over the base content.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{}
}

// Toggle flips the overlay visibility.
func (o *OverlayModel) Toggle() {
	o.active = !o.active
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the overlay background color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws content in a padded box on top of base. Content that does not
// fit the screen is cut.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := splitContent(content)
	contentW := 0
	for _, line := range contentLines {
		contentW = max(contentW, lipgloss.Width(line))
	}

	boxW := min(width, contentW+2*overlayPadX)
	boxH := min(height, len(contentLines)+2*overlayPadY)
	if boxW <= 0 || boxH <= 0 {
		return base
	}
	top := (height - boxH) / 2
	left := (width - boxW) / 2

	box := o.boxLines(contentLines, boxW, boxH)
	baseLines := normalizeBase(base, width, height)
	for i, line := range box {
		row := top + i
		leftSlice := ansi.Cut(baseLines[row], 0, left)
		rightSlice := ansi.Cut(baseLines[row], left+boxW, width)
		baseLines[row] = leftSlice + line + rightSlice
	}
	return strings.Join(baseLines, "\n")
}

// boxLines fills a boxW x boxH block with the background and places the
// content inside the padding.
func (o OverlayModel) boxLines(content []string, boxW, boxH int) []string {
	bgSeq := ""
	if o.bgColor != "" {
		bgSeq = ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
	}
	innerW := max(0, boxW-2*overlayPadX)
	padL := min(overlayPadX, boxW)

	lines := make([]string, boxH)
	for i := range lines {
		idx := i - overlayPadY
		if idx < 0 || idx >= len(content) || innerW == 0 {
			lines[i] = bgSeq + strings.Repeat(" ", boxW) + ansi.ResetStyle
			continue
		}
		line := ansi.Cut(content[idx], 0, innerW)
		if w := lipgloss.Width(line); w < innerW {
			line += strings.Repeat(" ", innerW-w)
		}
		line = reapplyBackground(line, bgSeq)
		lines[i] = bgSeq + strings.Repeat(" ", padL) + line + bgSeq + strings.Repeat(" ", boxW-padL-innerW) + ansi.ResetStyle
	}
	return lines
}

func splitContent(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(content, "\n"), "\n")
}

// reapplyBackground restores the box background after resets inside styled
// content.
func reapplyBackground(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	return strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
}

// normalizeBase pads or cuts base to exactly width x height.
func normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, line := range lines {
		switch w := lipgloss.Width(line); {
		case w > width:
			lines[i] = ansi.Cut(line, 0, width)
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}
