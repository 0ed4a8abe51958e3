package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

const scoreboardLimit = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardTabActive  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Prev key.Binding
	Next key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Prev, k.Next}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev board")),
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next board")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardTab is one selectable board on the scoreboard.
type boardTab struct {
	variant string // Score-table key, e.g. "snake-20x20"
	label   string // Preset name when one matches, else the size
}

// boardTabs lists the current variant first, then every preset, then any
// other variant that has stored scores.
func boardTabs(store *storage.Store, current string) []boardTab {
	names := make(map[string]string)
	for _, b := range registry.List() {
		if _, taken := names[b.VariantID()]; !taken {
			names[b.VariantID()] = b.Name
		}
	}

	var tabs []boardTab
	seen := make(map[string]bool)
	add := func(variant string) {
		if seen[variant] {
			return
		}
		seen[variant] = true
		label := strings.TrimPrefix(variant, "snake-")
		if name, ok := names[variant]; ok {
			label = name + " " + label
		}
		tabs = append(tabs, boardTab{variant: variant, label: label})
	}

	add(current)
	for _, b := range registry.List() {
		add(b.VariantID())
	}
	if store != nil {
		if stored, err := store.Variants(); err == nil {
			for _, v := range stored {
				add(v)
			}
		}
	}
	return tabs
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store     *storage.Store
	tabs      []boardTab
	active    int
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the current variant,
// which is listed even when it has no scores yet.
func NewScoreboardModel(store *storage.Store, current string, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:  store,
		tabs:   boardTabs(store, current),
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = newScoreTable(width, height)
	m.reload()

	return m
}

// newScoreTable sizes the score table to the terminal. Spare width goes to
// the player column.
func newScoreTable(width, height int) table.Model {
	player := 10
	if spare := width - 8 - 44; spare > 0 {
		player += min(spare, 14)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Length", Width: 7},
			{Title: "Player", Width: player},
			{Title: "When", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches scores and stats for the active board. Storage errors
// leave the board empty.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	variant := m.Variant()

	if m.store != nil {
		if scores, err := m.store.TopScores(variant, scoreboardLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(variant); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Length),
			s.Player,
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves the active board by delta, wrapping at both ends.
func (m *ScoreboardModel) cycle(delta int) {
	n := len(m.tabs)
	m.active = ((m.active+delta)%n + n) % n
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(m.width, m.height)
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES - "+m.Variant()), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardStatsStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	if len(m.scores) == 0 {
		body = boardEmptyStyle.Render("No scores on this board yet.")
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(boardHelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs draws one tab per board, or just the active one between
// arrows when they don't fit.
func (m ScoreboardModel) renderTabs() string {
	parts := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			parts[i] = boardTabActive.Render(t.label)
		} else {
			parts[i] = boardTabStyle.Render(t.label)
		}
	}

	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-2 {
		return fmt.Sprintf("◀ %s ▶", boardTabActive.Render(m.tabs[m.active].label))
	}
	return line
}

// statsLine summarizes the active board.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No games played"
	}
	return fmt.Sprintf("Games: %d  Best: %d  Avg: %.1f  Longest: %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.MaxLength)
}

// Variant returns the active board's variant id.
func (m ScoreboardModel) Variant() string {
	return m.tabs[m.active].variant
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen on its own.
// Returns true if the user pressed back rather than quit.
func RunScoreboard(store *storage.Store, current string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, current, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
