package tui

import "github.com/javiermolinar/lanes/internal/tui/view"

const (
	titleHeight  = 1
	footerHeight = 1

	// Sidebar width grows with the terminal between these bounds.
	sidebarMinWidth = 14
	sidebarMaxWidth = 24
)

// LayoutCache stores the screen regions derived from the window size.
// Grid coordinates are screen cells.
type LayoutCache struct {
	Width, Height int

	SidebarW int
	RulerY   int

	GridX, GridY int
	GridW, GridH int

	FooterY int
}

func buildLayoutCache(width, height int) LayoutCache {
	width = max(0, width)
	height = max(0, height)

	sidebarW := min(sidebarMaxWidth, max(sidebarMinWidth, width/6))
	sidebarW = min(sidebarW, width)

	gridY := titleHeight + view.RulerHeight
	gridH := max(0, height-gridY-footerHeight)

	return LayoutCache{
		Width:    width,
		Height:   height,
		SidebarW: sidebarW,
		RulerY:   titleHeight,
		GridX:    sidebarW,
		GridY:    gridY,
		GridW:    width - sidebarW,
		GridH:    gridH,
		FooterY:  max(0, height-footerHeight),
	}
}

// inGrid reports whether the screen cell (x, y) lies in the grid.
func (l LayoutCache) inGrid(x, y int) bool {
	return x >= l.GridX && x < l.GridX+l.GridW && y >= l.GridY && y < l.GridY+l.GridH
}

// inSidebar reports whether the screen cell (x, y) lies in the track list.
func (l LayoutCache) inSidebar(x, y int) bool {
	return x >= 0 && x < l.SidebarW && y >= l.GridY && y < l.GridY+l.GridH
}
