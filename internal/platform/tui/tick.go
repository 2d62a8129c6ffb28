// Package tui provides the Bubble Tea front-end for gridtoys.
// It handles the terminal UI loop, key mapping and grid rendering.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID names the tick loop so that a loop left over from a previous
// game never drives the next one.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastTickID atomic.Int64

func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// tickRate picks the override rate when set, else the game's own frame rate.
func tickRate(override, native int) int {
	if override > 0 {
		return override
	}
	return native
}
