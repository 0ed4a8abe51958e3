// Package snake implements a snake game on a wraparound grid.
//
// World holds the session state and is driven by Tick, PushCommand,
// NewGame and TogglePause. Game adapts a World to the platform's
// input frames and screen buffer.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// VariantID returns the score-table key for a board configuration.
func VariantID(cfg Config) string {
	cfg = cfg.withDefaults()
	return fmt.Sprintf("snake-%dx%d", cfg.Cols, cfg.Rows)
}

// Game implements the Snake game for the terminal platform.
type Game struct {
	cfg       Config
	world     *World
	notifier  Notifier
	highScore int
	screenW   int
	screenH   int
}

// New creates a game with the given board configuration.
// Reset must be called before the first Step.
func New(cfg Config) *Game {
	return &Game{cfg: cfg.withDefaults()}
}

// ID returns the game identifier, which includes the board size.
func (g *Game) ID() string {
	return VariantID(g.cfg)
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// SetNotifier registers the collaborator told about every game over.
func (g *Game) SetNotifier(n Notifier) {
	g.notifier = n
}

// SetHighScore sets the best known score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// HighScore returns the best score seen, including the current session.
func (g *Game) HighScore() int {
	return g.highScore
}

// Reset starts a fresh, paused session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.world = NewWorld(g.cfg, rand.New(rand.NewSource(cfg.Seed)))
	g.world.SetNotifier(NotifierFunc(g.onGameOver))
}

// Resize updates the viewport used for rendering. Game state is untouched.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

func (g *Game) onGameOver(score int) {
	if score > g.highScore {
		g.highScore = score
	}
	if g.notifier != nil {
		g.notifier.GameOver(score)
	}
}

// Step applies the frame's commands in arrival order and then advances the
// world by the frame's elapsed time.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	for _, a := range input.Actions {
		if d, ok := directionForAction(a); ok {
			g.world.PushCommand(d)
			continue
		}
		switch a {
		case core.ActionRestart:
			g.world.NewGame()
		case core.ActionPause:
			g.world.TogglePause()
		}
	}

	res := g.world.Tick(input.Elapsed, input.Boost)
	return core.StepResult{State: g.State(), Moved: res.Moved}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.Over(),
		Paused:   g.world.Paused(),
	}
}

// World returns the underlying session.
func (g *Game) World() *World {
	return g.world
}

// Snapshot returns the session snapshot with the HUD high score filled in.
func (g *Game) Snapshot() Snapshot {
	snap := g.world.Snapshot()
	snap.HighScore = g.highScore
	return snap
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	snap := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, State: %s\n", snap.Tick, snap.Score, snap.State)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %d\n", len(snap.Trail), snap.Dir, snap.Pending)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: %v\n", snap.Head.X, snap.Head.Y, snap.Food)
	return b.String()
}
