package snake

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Point is a cell coordinate on the board.
type Point = core.Point

// Grid describes a toroidal board. Moving past an edge re-enters from the
// opposite edge.
type Grid struct {
	Cols int
	Rows int
}

// Wrap normalizes p so that both coordinates lie inside the grid.
func (g Grid) Wrap(p Point) Point {
	return Point{X: core.Mod(p.X, g.Cols), Y: core.Mod(p.Y, g.Rows)}
}

// Contains reports whether p lies inside the grid without wrapping.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// RandomPoint picks a cell uniformly over the whole grid.
func (g Grid) RandomPoint(rng *rand.Rand) Point {
	return Point{X: rng.Intn(g.Cols), Y: rng.Intn(g.Rows)}
}
