// Package tui provides the Bubble Tea integration: the terminal event loop,
// key mapping, rendering, replay playback, and the SSH server. The core has
// no timers, so the two fixed-rate schedulers live here as independent
// message streams serialized by the Bubble Tea loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step.
type TickMsg time.Time

// SpawnMsg triggers one obstacle pair spawn. It runs on its own, slower
// schedule, independent of the tick stream.
type SpawnMsg time.Time

// tickCmd schedules the next simulation tick at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// spawnCmd schedules the next obstacle spawn.
func spawnCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SpawnMsg(t)
	})
}
