package snake

import (
	"math/rand"
	"time"
)

// Board and pacing defaults.
const (
	DefaultCols      = 20
	DefaultRows      = 20
	DefaultFoodCount = 3
)

// Notifier is told when a game ends. It receives the final score.
type Notifier interface {
	GameOver(score int)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(score int)

// GameOver calls f(score).
func (f NotifierFunc) GameOver(score int) {
	f(score)
}

// Config describes a session's board, food and snake.
type Config struct {
	Cols          int
	Rows          int
	FoodCount     int
	Start         Point
	Direction     Direction
	MoveInterval  time.Duration
	QueueCapacity int
}

// DefaultConfig returns the classic 20x20 board with three food items.
func DefaultConfig() Config {
	return Config{
		Cols:          DefaultCols,
		Rows:          DefaultRows,
		FoodCount:     DefaultFoodCount,
		Start:         Point{X: 0, Y: 0},
		Direction:     DirRight,
		MoveInterval:  DefaultMoveInterval,
		QueueCapacity: DefaultQueueCapacity,
	}
}

// withDefaults fills unusable fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Cols <= 0 {
		c.Cols = def.Cols
	}
	if c.Rows <= 0 {
		c.Rows = def.Rows
	}
	if c.FoodCount < 0 {
		c.FoodCount = 0
	}
	if c.MoveInterval <= 0 {
		c.MoveInterval = def.MoveInterval
	}
	if c.QueueCapacity <= 0 {
		c.QueueCapacity = def.QueueCapacity
	}
	if !c.Direction.Valid() {
		c.Direction = def.Direction
	}
	return c
}

// World is one game session: the snake, the food, the score and the
// pause/game-over flags. It is not safe for concurrent use; the host must
// deliver ticks and commands from a single goroutine.
type World struct {
	grid     Grid
	actor    *Actor
	food     []*Food
	rng      *rand.Rand
	notifier Notifier
	score    int
	paused   bool
	over     bool
	ticks    uint64
}

// NewWorld creates a paused session. Food is scattered using rng.
func NewWorld(cfg Config, rng *rand.Rand) *World {
	cfg = cfg.withDefaults()
	g := Grid{Cols: cfg.Cols, Rows: cfg.Rows}

	w := &World{
		grid: g,
		actor: NewActor(g, ActorConfig{
			Start:         cfg.Start,
			Direction:     cfg.Direction,
			MoveInterval:  cfg.MoveInterval,
			QueueCapacity: cfg.QueueCapacity,
		}),
		food:   make([]*Food, 0, cfg.FoodCount),
		rng:    rng,
		paused: true,
	}

	for i := 0; i < cfg.FoodCount; i++ {
		f := NewFood(Point{})
		f.Relocate(rng, g)
		w.food = append(w.food, f)
	}

	return w
}

// SetNotifier sets the game-over collaborator. nil disables notification.
func (w *World) SetNotifier(n Notifier) {
	w.notifier = n
}

// Tick advances the session by dt of real time. Nothing happens while
// paused. boost halves the move interval for this tick only.
func (w *World) Tick(dt time.Duration, boost bool) MoveResult {
	if w.paused {
		return MoveResult{}
	}
	w.ticks++

	res := w.actor.Update(dt, boost, w.food, w.rng)
	for _, f := range w.food {
		f.Update(dt)
	}

	w.score += res.Eaten
	if res.Collided {
		w.GameOver()
	}
	return res
}

// PushCommand queues a direction change. Commands beyond the queue
// capacity are dropped.
func (w *World) PushCommand(d Direction) bool {
	return w.actor.PushCommand(d)
}

// GameOver ends the session: it pauses and notifies with the final score.
// Calling it on a finished session does nothing.
func (w *World) GameOver() {
	if w.over {
		return
	}
	w.over = true
	w.paused = true
	if w.notifier != nil {
		w.notifier.GameOver(w.score)
	}
}

// NewGame clears the game-over flag, zeroes the score and resets the snake.
// Food stays where it is and the pause flag is left unchanged.
func (w *World) NewGame() {
	w.over = false
	w.score = 0
	w.actor.Reset()
}

// TogglePause flips the pause flag, starting a new game first if the
// current one is over.
func (w *World) TogglePause() {
	if w.over {
		w.NewGame()
	}
	w.paused = !w.paused
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Paused reports whether ticks are being ignored.
func (w *World) Paused() bool {
	return w.paused
}

// Over reports whether the snake has run into itself.
func (w *World) Over() bool {
	return w.over
}

// Grid returns the board dimensions.
func (w *World) Grid() Grid {
	return w.grid
}

// Actor returns the snake.
func (w *World) Actor() *Actor {
	return w.actor
}

// Food returns the food positions in creation order.
func (w *World) Food() []Point {
	pts := make([]Point, len(w.food))
	for i, f := range w.food {
		pts[i] = f.Position()
	}
	return pts
}
