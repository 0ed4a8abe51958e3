package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is a read-only copy of everything needed to draw a frame, and
// is also used to compare runs for determinism.
type Snapshot struct {
	Tick      uint64
	Cols      int
	Rows      int
	Score     int
	Trail     []Point // Oldest first; the last entry is the head
	Head      Point
	Dir       Direction
	Food      []Point
	Pending   int
	State     GameStateType
	HighScore int
}

// Snapshot returns the current session state.
func (w *World) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case w.over:
		state = StateGameOver
	case w.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    w.ticks,
		Cols:    w.grid.Cols,
		Rows:    w.grid.Rows,
		Score:   w.score,
		Trail:   w.actor.Trail(),
		Head:    w.actor.Head(),
		Dir:     w.actor.Direction(),
		Food:    w.Food(),
		Pending: w.actor.Pending(),
		State:   state,
	}
}
