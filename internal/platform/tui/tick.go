// Package tui provides the Bubble Tea front-end for the crossing game.
// It handles the terminal UI loop, input mapping and the projection of the
// game's pixel canvas onto terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game frame.
type TickMsg time.Time

// SweepMsg is sent to trigger the off-screen enemy cleanup. It runs on its
// own timer, independent of the frame rate.
type SweepMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sweepCmd returns a command that sends one sweep message after interval.
func sweepCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SweepMsg(t)
	})
}
