// Package window draws games in a desktop window using ebiten.
// The window itself is only built with the ebiten build tag; layout math
// lives here so it can be tested headless.
package window

import "github.com/gridtoys/gridtoys/internal/core"

const (
	cellSize   = 30
	margin     = 10
	panelWidth = 300
	itemGap    = 20
)

var (
	backgroundColor = core.ColorBlack
	gridColor       = core.RGB(50, 50, 50)
	textColor       = core.RGB(220, 220, 220)
)

// WindowSize returns the window size in pixels for a grid of w x h cells.
func WindowSize(w, h int, hasPanel bool) (int, int) {
	width := 2*margin + w*cellSize
	if hasPanel {
		width += panelWidth
	}
	return width, 2*margin + h*cellSize
}

// cellOrigin returns the top-left pixel of cell (x, y) for a grid drawn at origin.
func cellOrigin(origin core.Point, x, y int) core.Point {
	return core.P(origin.X+x*cellSize, origin.Y+y*cellSize)
}

// panelOrigin returns where the first side panel item is drawn.
func panelOrigin(gridWidth int) core.Point {
	return core.P(2*margin+gridWidth*cellSize, margin)
}
