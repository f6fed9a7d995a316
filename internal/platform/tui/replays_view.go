package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flaptty/internal/replay"
	"flaptty/internal/storage"
)

const maxReplays = 100 // Max replays to load into the browser

// ReplaysKeyMap defines the key bindings for the replay browser.
type ReplaysKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Play   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Play, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Play},
		{k.Delete, k.Quit},
	}
}

// DefaultReplaysKeyMap returns default key bindings.
func DefaultReplaysKeyMap() ReplaysKeyMap {
	return ReplaysKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplaysModel is the Bubble Tea model for the replay browser screen.
type ReplaysModel struct {
	store    *storage.Store
	entries  []storage.ReplayEntry
	table    table.Model
	help     help.Model
	keys     ReplaysKeyMap
	width    int
	height   int
	quitting bool
	selected *storage.ReplayEntry // Set when the user picks a replay to play
	loadErr  error
}

// NewReplaysModel creates a replay browser backed by the given store.
func NewReplaysModel(store *storage.Store, width, height int) ReplaysModel {
	m := ReplaysModel{
		store:  store,
		keys:   DefaultReplaysKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.reload()
	return m
}

func (m *ReplaysModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Recorded", Width: 17},
		{Title: "Ticks", Width: 8},
		{Title: "Flaps", Width: 7},
		{Title: "Duration", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(m.height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("11"))
	t.SetStyles(s)

	return t
}

func tableHeight(screenH int) int {
	h := screenH - 8 // Title, padding, help line
	if h < 3 {
		h = 3
	}
	return h
}

// reload refreshes the entry list from storage.
func (m *ReplaysModel) reload() {
	if m.store == nil {
		return
	}

	entries, err := m.store.RecentReplays(maxReplays)
	if err != nil {
		m.loadErr = err
		return
	}
	m.entries = entries

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		flaps := 0
		for _, ev := range e.Log.Events {
			if ev.Kind == replay.KindImpulse {
				flaps++
			}
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", e.ID),
			e.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", e.Log.Ticks),
			fmt.Sprintf("%d", flaps),
			fmt.Sprintf("%ds", e.Duration),
		})
	}
	m.table.SetRows(rows)
}

// Init initializes the replay browser.
func (m ReplaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Play):
			if e := m.current(); e != nil {
				m.selected = e
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.Delete):
			if e := m.current(); e != nil && m.store != nil {
				//nolint:errcheck // Best-effort delete, list just reloads
				m.store.DeleteReplay(e.ID)
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(tableHeight(msg.Height))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// current returns the entry under the cursor, or nil.
func (m ReplaysModel) current() *storage.ReplayEntry {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return nil
	}
	e := m.entries[i]
	return &e
}

// View renders the replay browser.
func (m ReplaysModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Render(" Replays ")
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(centerText(fmt.Sprintf("Could not load replays: %v", m.loadErr), m.width))
	case len(m.entries) == 0:
		b.WriteString(centerText("No replays recorded yet. Finish a run to record one.", m.width))
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunReplays shows the replay browser and returns the replay the user chose
// to play, or nil if they quit.
func RunReplays(store *storage.Store, width, height int) (*storage.ReplayEntry, error) {
	model := NewReplaysModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(ReplaysModel)
	if !ok {
		return nil, nil
	}
	return m.selected, nil
}
