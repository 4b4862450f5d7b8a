// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, scores and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one engine tick.
// Gen is the game generation the tick was scheduled for; ticks from a
// previous game are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
// The model schedules the next tick only after handling this one.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
