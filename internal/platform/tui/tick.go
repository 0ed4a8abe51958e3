// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, score recording and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameGap caps the elapsed time fed to the game for a single tick, so a
// suspended terminal does not bank seconds of movement.
const maxFrameGap = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into elapsed durations.
type frameClock struct {
	last time.Time
}

// elapsed returns the time since the previous tick. The first tick and
// ticks arriving out of order report zero.
func (c *frameClock) elapsed(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrameGap)
}

// reset forgets the previous tick, e.g. after returning from a menu.
func (c *frameClock) reset() {
	c.last = time.Time{}
}
