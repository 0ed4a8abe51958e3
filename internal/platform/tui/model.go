package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

// GameOptions configures a GameModel.
type GameOptions struct {
	Game      snake.Config
	Runtime   core.RuntimeConfig
	BoostHold time.Duration // How long one boost key press keeps boost held
	Player    string
	SessionID string // Generated when empty
	Logger    *log.Logger
}

// GameModel is the Bubble Tea model for a running snake game.
type GameModel struct {
	game       *snake.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	recorder   *ScoreRecorder
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	frame      core.InputFrame
	clock      frameClock
	boostHold  time.Duration
	boostUntil time.Time
	now        func() time.Time
	gameState  core.GameState
	quitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and starts a fresh, paused session.
func NewGameModel(store *storage.Store, opts GameOptions) GameModel {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	if opts.Player == "" {
		opts.Player = storage.LocalPlayer
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := snake.New(opts.Game)
	game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.ScreenW,
		ScreenH:  max(cfg.ScreenH-helpHeight, 0),
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	})

	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			game.SetHighScore(high)
		} else {
			logger.Warn("could not load high score", "game", game.ID(), "error", err)
		}
	}

	recorder := NewScoreRecorder(store, logger, game, opts.Player, opts.SessionID)
	game.SetNotifier(recorder)

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		store:     store,
		logger:    logger,
		recorder:  recorder,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		frame:     core.NewInputFrame(),
		boostHold: opts.BoostHold,
		now:       time.Now,
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the action for the next tick. Quit, back and boost are
// handled here.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		// Only leave a game that is not running
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
		}

	case core.ActionBoost:
		m.boostUntil = m.now().Add(m.boostHold)

	default:
		m.frame.Push(action)
	}

	return m, nil
}

// handleResize updates the viewport. The game keeps its state.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	h := max(msg.Height-helpHeight, 0)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick advances the game by the time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.frame.Elapsed = m.clock.elapsed(now)
	m.frame.Boost = now.Before(m.boostUntil)

	result := m.game.Step(m.frame)
	m.gameState = result.State

	m.frame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Game returns the running game.
func (m GameModel) Game() *snake.Game {
	return m.game
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Boosting reports whether boost is held at time t.
func (m GameModel) Boosting(t time.Time) bool {
	return t.Before(m.boostUntil)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the player quits.
func Run(store *storage.Store, opts GameOptions) error {
	model := NewGameModel(store, opts)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
