package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flaptty/internal/core"
	"flaptty/internal/replay"
	"flaptty/internal/sim"
	"flaptty/internal/storage"
)

// Options configures a game session.
type Options struct {
	Runtime    core.RuntimeConfig
	Params     sim.Params
	SpawnEvery time.Duration

	// Store receives finished-run replays. May be nil; the game works
	// without persistence.
	Store *storage.Store

	// Playback, when set, replays a recorded run instead of taking live
	// input. The spawn timer is not started; spawns come from the log.
	Playback *replay.Log
}

// Model is the Bubble Tea model driving one game session. It owns the world
// and is the only component that mutates it, so the tick, spawn, and input
// streams are serialized by construction.
type Model struct {
	opts      Options
	world     *sim.World
	screen    *core.Screen
	projector *Projector
	keys      *KeyMapper

	inputFrame core.InputFrame

	rec         replay.Log     // live-mode recording of the current run
	cursor      *replay.Cursor // playback position, nil in live mode
	playbackEnd bool

	startedAt   time.Time
	paused      bool
	quitting    bool
	replaySaved bool
}

// NewModel creates a model for the given session options.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	m := Model{
		opts:       opts,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		projector:  NewProjector(opts.Params.BoardW, opts.Params.BoardH),
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}

	if opts.Playback != nil {
		m.world = sim.New(opts.Params, opts.Playback.Seed)
		m.cursor = replay.NewCursor(*opts.Playback)
	} else {
		m.world = sim.New(opts.Params, opts.Runtime.Seed)
		m.rec = replay.Log{Seed: opts.Runtime.Seed, TickRate: opts.Runtime.TickRate}
	}

	return m
}

// Init starts the timers: the simulation tick stream always, the spawn
// stream only for live play.
func (m Model) Init() tea.Cmd {
	if m.cursor != nil {
		return tickCmd(m.tickRate())
	}
	return tea.Batch(tickCmd(m.tickRate()), spawnCmd(m.opts.SpawnEvery))
}

func (m Model) tickRate() int {
	if m.opts.Runtime.TickRate > 0 {
		return m.opts.Runtime.TickRate
	}
	return 60
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case SpawnMsg:
		return m.handleSpawn()
	}

	return m, nil
}

// handleKey collects input into the frame; actions apply on the next tick so
// recorded event indices line up with simulation steps.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Playback takes no gameplay input, only pause and quit.
	if m.cursor != nil && action != core.ActionPause {
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick applies buffered input, then advances the simulation one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionPause) {
		m.paused = !m.paused
	}

	if m.paused || m.playbackEnd {
		m.inputFrame.Clear()
		return m, tickCmd(m.tickRate())
	}

	if m.cursor != nil {
		return m.playbackTick()
	}

	if m.inputFrame.Has(core.ActionFlap) {
		if m.world.Over() {
			// Tap-to-restart: a fresh world with a fresh seed, so every
			// run gets its own self-contained replay.
			m.restart()
		}
		m.rec.Record(m.world.Ticks(), replay.KindImpulse)
		m.world.RequestImpulse()
	} else if m.inputFrame.Has(core.ActionRestart) && m.world.Over() {
		m.restart()
	}
	m.inputFrame.Clear()

	m.world.Tick()

	if m.world.Over() && !m.replaySaved {
		m.saveReplay()
	}

	return m, tickCmd(m.tickRate())
}

// playbackTick feeds recorded events to the world in place of live input.
func (m Model) playbackTick() (tea.Model, tea.Cmd) {
	m.inputFrame.Clear()

	for _, ev := range m.cursor.Next(m.world.Ticks()) {
		switch ev.Kind {
		case replay.KindImpulse:
			m.world.RequestImpulse()
		case replay.KindSpawn:
			m.world.SpawnObstaclePair()
		}
	}

	m.world.Tick()

	if m.cursor.Done(m.world.Ticks()) || m.world.Over() {
		m.playbackEnd = true
	}

	return m, tickCmd(m.tickRate())
}

// handleSpawn runs the slower obstacle schedule for live play.
func (m Model) handleSpawn() (tea.Model, tea.Cmd) {
	if m.cursor != nil {
		return m, nil
	}
	if !m.paused && !m.world.Over() {
		m.rec.Record(m.world.Ticks(), replay.KindSpawn)
		m.world.SpawnObstaclePair()
	}
	return m, spawnCmd(m.opts.SpawnEvery)
}

// restart begins a new run: new world, new seed, new recording.
func (m *Model) restart() {
	seed := time.Now().UnixNano()
	m.world = sim.New(m.opts.Params, seed)
	m.rec = replay.Log{Seed: seed, TickRate: m.opts.Runtime.TickRate}
	m.replaySaved = false
	m.startedAt = time.Now()
}

// saveReplay persists the finished run, best-effort.
func (m *Model) saveReplay() {
	m.replaySaved = true
	if m.opts.Store == nil || len(m.rec.Events) == 0 {
		return
	}
	m.rec.Ticks = m.world.Ticks()
	duration := int(time.Since(m.startedAt).Seconds())
	//nolint:errcheck // Best-effort save, game continues regardless
	m.opts.Store.SaveReplay(m.rec, duration)
}

// saveScreenshot writes the current frame to ~/.flaptty/screenshots.
func (m *Model) saveScreenshot() {
	m.projector.Draw(m.world.Snapshot(), m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".flaptty", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flaptty_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.world.Snapshot()
	m.projector.Draw(snap, m.screen)

	switch {
	case m.paused:
		drawCenteredMessage(m.screen, "PAUSED", "Press P to resume")
	case m.playbackEnd:
		drawCenteredMessage(m.screen, "REPLAY ENDED",
			fmt.Sprintf("Score: %d  |  Q to quit", int(snap.Score)))
	case snap.GameOver && m.cursor == nil:
		drawCenteredMessage(m.screen, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Space to restart", int(snap.Score)))
	}

	return RenderScreen(m.screen)
}

// Run starts a Bubble Tea program for the given session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
