package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gridtoys/gridtoys/internal/core"
)

// cellWidth is the number of terminal columns one grid cell occupies.
// Terminal cells are roughly twice as tall as wide.
const cellWidth = 3

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	panelItemStyle = boxStyle.Padding(0, 1)
	bestStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// cellStyle returns the style and text for one grid cell.
// Glyph cells draw the glyph in the cell color; plain filled cells draw
// a solid block of background color.
func cellStyle(c core.Cell) (lipgloss.Style, string) {
	switch {
	case c.IsBlank():
		return lipgloss.NewStyle(), strings.Repeat(" ", cellWidth)
	case c.Glyph != 0:
		pad := strings.Repeat(" ", cellWidth/2)
		text := pad + string(c.Glyph) + strings.Repeat(" ", cellWidth-cellWidth/2-1)
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color.Hex())), text
	default:
		return lipgloss.NewStyle().Background(lipgloss.Color(c.Color.Hex())), strings.Repeat(" ", cellWidth)
	}
}

// sameLook reports whether two cells render with one shared style.
func sameLook(a, b core.Cell) bool {
	if a.IsBlank() || b.IsBlank() {
		return a.IsBlank() == b.IsBlank()
	}
	return a.Color == b.Color && (a.Glyph == 0) == (b.Glyph == 0)
}

// RenderBuffer converts a grid to a styled string for display.
// Groups adjacent cells with the same look to minimize ANSI escape sequences.
func RenderBuffer(v core.View) string {
	w, h := v.Dimensions()

	var sb strings.Builder
	sb.Grow(w*h*cellWidth + h)

	for y := range h {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < w {
			start := v.CellAt(core.P(x, y))
			style, _ := cellStyle(start)

			var run strings.Builder
			for x < w {
				cell := v.CellAt(core.P(x, y))
				if !sameLook(cell, start) {
					break
				}
				_, text := cellStyle(cell)
				run.WriteString(text)
				x++
			}

			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderPanel draws each side panel item in its own rounded box.
func RenderPanel(items []core.PanelItem) string {
	boxes := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsBuffer() {
			boxes = append(boxes, boxStyle.Render(RenderBuffer(item.Buf)))
			continue
		}
		boxes = append(boxes, panelItemStyle.Render(strings.TrimRight(item.Text, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

// RenderGraphics draws the title header and grid in one box with the side
// panel, if any, to its right.
func RenderGraphics(g *core.Graphics) string {
	grid := RenderBuffer(g.Buf)
	header := titleStyle.
		Width(g.Buf.Width() * cellWidth).
		Align(lipgloss.Center).
		Render(g.Title)
	rule := strings.Repeat("═", g.Buf.Width()*cellWidth)
	main := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, rule, grid))

	if !g.HasPanel() {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, " ", RenderPanel(g.Panel))
}
