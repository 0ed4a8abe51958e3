package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Direction represents the snake's movement direction.
// Ordinals matter: two directions are opposite iff their ordinals differ by 2.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// IsOpposite reports whether d and o point in opposite directions.
func (d Direction) IsOpposite(o Direction) bool {
	return core.Abs(int(d)-int(o)) == 2
}

// Offset returns the unit step for one move in this direction.
func (d Direction) Offset() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirRight:
		return Point{X: 1, Y: 0}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name such as "up" or "LEFT" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	}
	return DirRight, fmt.Errorf("unknown direction %q", s)
}

// directionForAction maps a platform action to a direction.
func directionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	}
	return DirRight, false
}
