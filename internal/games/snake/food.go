package snake

import (
	"math/rand"
	"time"
)

// Food is an item the snake can eat. It is never destroyed: eating it moves
// it somewhere else on the board.
type Food struct {
	pos Point
}

// NewFood creates a food item at p.
func NewFood(p Point) *Food {
	return &Food{pos: p}
}

// Position returns the food's cell.
func (f *Food) Position() Point {
	return f.pos
}

// Relocate moves the food to a uniformly random cell. Occupied cells are
// not excluded, so food may land on the snake or on other food.
func (f *Food) Relocate(rng *rand.Rand, g Grid) {
	f.pos = g.RandomPoint(rng)
}

// Update advances the food by one tick. Food is static.
func (f *Food) Update(time.Duration) {}
