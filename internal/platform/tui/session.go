package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// sessionScreen is the screen a SessionModel is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Game      snake.Config
	Runtime   core.RuntimeConfig
	BoostHold time.Duration
	Player    string
	SessionID string
	Logger    *log.Logger
}

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model for SSH sessions and for local menu mode.
// Every game started from the menu gets its own World.
type SessionModel struct {
	store      *storage.Store
	opts       SessionOptions
	screen     sessionScreen
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model showing the menu.
func NewSessionModel(store *storage.Store, opts SessionOptions) SessionModel {
	m := SessionModel{
		store: store,
		opts:  opts,
	}
	m.menu = m.newMenu()
	return m
}

// newMenu builds the menu for the current screen size and best score.
func (m SessionModel) newMenu() MenuModel {
	variant := snake.VariantID(m.opts.Game)
	best := 0
	if m.store != nil {
		if high, err := m.store.HighScore(variant); err == nil {
			best = high
		}
	}
	return NewMenuModel(m.opts.Runtime, variant, best)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks still in flight from a finished game are dropped here
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch *selected {
	case MenuPlay:
		runtime := m.opts.Runtime
		runtime.Seed = time.Now().UnixNano()
		gameModel := NewGameModel(m.store, GameOptions{
			Game:      m.opts.Game,
			Runtime:   runtime,
			BoostHold: m.opts.BoostHold,
			Player:    m.opts.Player,
			SessionID: m.opts.SessionID,
			Logger:    m.opts.Logger,
		})
		m.gameModel = &gameModel
		m.screen = screenGame
		return m, m.gameModel.Init()

	case MenuScores:
		sb := NewScoreboardModel(m.store, snake.VariantID(m.opts.Game), m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.scoreboard = &sb
		m.screen = screenScores
		return m, m.scoreboard.Init()
	}

	return m, nil
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu discards the current screen and shows a fresh menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.gameModel = nil
	m.scoreboard = nil
	m.screen = screenMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// IsQuitting returns true if the session has ended.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(store, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
