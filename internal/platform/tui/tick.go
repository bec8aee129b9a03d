// Package tui runs arkanoid rounds in the terminal with Bubble Tea, locally
// or over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the game model to simulate one frame. Round ties the tick to
// the model that scheduled it, so a late tick from a finished round cannot
// start a second frame loop in the next one.
type TickMsg struct {
	Round uint64
	At    time.Time
}

var rounds atomic.Uint64

func nextRound() uint64 {
	return rounds.Add(1)
}

// tickCmd schedules the next frame at the given rate.
func tickCmd(round uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Round: round, At: t}
	})
}
