package snake

import (
	"math/rand"
	"time"
)

// DefaultMoveInterval is the time between moves at normal speed.
const DefaultMoveInterval = 160 * time.Millisecond

// initialLength is the trail length of a freshly reset snake.
const initialLength = 2

// ActorConfig configures the snake's starting state and pacing.
type ActorConfig struct {
	Start         Point
	Direction     Direction
	MoveInterval  time.Duration
	QueueCapacity int
}

// MoveResult describes what happened during one Actor.Update call.
type MoveResult struct {
	Moved    bool // The snake advanced one cell
	Collided bool // The new head hit the snake's own body
	Eaten    int  // Food items consumed on this move
}

// Actor is the player-controlled snake.
//
// The trail is ordered oldest-first and its last entry is always the head.
// Its length equals the snake's length, which only grows.
type Actor struct {
	grid      Grid
	start     Point
	startDir  Direction
	interval  time.Duration
	head      Point
	trail     []Point
	queue     *CommandQueue
	direction Direction
	clock     time.Duration
}

// NewActor creates a snake on grid g in its initial state.
func NewActor(g Grid, cfg ActorConfig) *Actor {
	if cfg.MoveInterval <= 0 {
		cfg.MoveInterval = DefaultMoveInterval
	}
	if !cfg.Direction.Valid() {
		cfg.Direction = DirRight
	}

	a := &Actor{
		grid:     g,
		start:    g.Wrap(cfg.Start),
		startDir: cfg.Direction,
		interval: cfg.MoveInterval,
		trail:    make([]Point, 0, 16),
		queue:    NewCommandQueue(cfg.QueueCapacity),
	}
	a.Reset()
	return a
}

// Reset restores the starting position, direction and two-cell trail.
// Pending commands and the movement clock are cleared as well.
func (a *Actor) Reset() {
	a.head = a.start
	a.trail = a.trail[:0]
	for i := 0; i < initialLength; i++ {
		a.trail = append(a.trail, a.start)
	}
	a.direction = a.startDir
	a.queue.Clear()
	a.clock = 0
}

// PushCommand queues a direction change for a later move.
// It reports false when the queue is full and the command was dropped.
func (a *Actor) PushCommand(d Direction) bool {
	if !d.Valid() {
		return false
	}
	return a.queue.Push(d)
}

// Interval returns the time between moves, halved while boosting.
func (a *Actor) Interval(boost bool) time.Duration {
	if boost {
		return a.interval / 2
	}
	return a.interval
}

// Update accumulates elapsed time and performs at most one move once a full
// interval has passed. The leftover time carries into the next call.
// Food that the snake covers after the move is eaten and relocated via rng.
func (a *Actor) Update(dt time.Duration, boost bool, food []*Food, rng *rand.Rand) MoveResult {
	interval := a.Interval(boost)

	a.clock += dt
	if a.clock < interval {
		return MoveResult{}
	}
	a.clock -= interval

	a.direction = a.queue.Resolve(a.direction)
	a.advance()

	if a.hitsSelf() {
		return MoveResult{Moved: true, Collided: true}
	}

	return MoveResult{Moved: true, Eaten: a.consume(food, rng)}
}

// advance moves the head one cell and drops the oldest trail entry.
func (a *Actor) advance() {
	next := a.grid.Wrap(a.head.Add(a.direction.Offset()))
	copy(a.trail, a.trail[1:])
	a.trail[len(a.trail)-1] = next
	a.head = next
}

// hitsSelf compares the head with every trail entry except the head itself.
func (a *Actor) hitsSelf() bool {
	for _, p := range a.trail[:len(a.trail)-1] {
		if p == a.head {
			return true
		}
	}
	return false
}

// consume checks every food item against every trail cell. Each match scores
// one, relocates the food and grows the trail by a copy of the head.
// The trail length is re-read each iteration, so cells appended here are
// checked too.
func (a *Actor) consume(food []*Food, rng *rand.Rand) int {
	eaten := 0
	for _, f := range food {
		for i := 0; i < len(a.trail); i++ {
			if a.trail[i] != f.Position() {
				continue
			}
			eaten++
			f.Relocate(rng, a.grid)
			a.trail = append(a.trail, a.head)
		}
	}
	return eaten
}

// Head returns the head position.
func (a *Actor) Head() Point {
	return a.head
}

// Trail returns a copy of the body, oldest first, head last.
func (a *Actor) Trail() []Point {
	return append([]Point(nil), a.trail...)
}

// Len returns the snake's length.
func (a *Actor) Len() int {
	return len(a.trail)
}

// Direction returns the current heading.
func (a *Actor) Direction() Direction {
	return a.direction
}

// Pending returns the number of queued commands.
func (a *Actor) Pending() int {
	return a.queue.Len()
}
