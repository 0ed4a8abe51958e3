// Package registry holds named board presets.
// Presets register themselves in init() functions, allowing the CLI to
// offer boards by name without hardcoding them.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Board is a named board size with its food count.
type Board struct {
	Name  string // Lookup key, e.g. "classic"
	Title string // Short description for listings
	Cols  int
	Rows  int
	Food  int
}

// Apply copies the board's dimensions and food count onto cfg.
func (b Board) Apply(cfg snake.Config) snake.Config {
	cfg.Cols = b.Cols
	cfg.Rows = b.Rows
	cfg.FoodCount = b.Food
	return cfg
}

// VariantID returns the score-table key for games on this board.
func (b Board) VariantID() string {
	return snake.VariantID(snake.Config{Cols: b.Cols, Rows: b.Rows})
}

var (
	boards = make(map[string]Board)
	mu     sync.RWMutex
)

// Register adds a board preset to the registry.
// Typically called from an init() function.
// Panics if the name is taken or the board is unplayable.
func Register(b Board) {
	mu.Lock()
	defer mu.Unlock()

	if b.Name == "" {
		panic("registry: board name must not be empty")
	}
	if b.Cols <= 0 || b.Rows <= 0 || b.Food < 0 {
		panic(fmt.Sprintf("registry: board %q has invalid size %dx%d with %d food", b.Name, b.Cols, b.Rows, b.Food))
	}
	if _, exists := boards[b.Name]; exists {
		panic(fmt.Sprintf("registry: board %q already registered", b.Name))
	}

	boards[b.Name] = b
}

// List returns all registered boards, smallest first.
func List() []Board {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Board, 0, len(boards))
	for _, b := range boards {
		result = append(result, b)
	}

	sort.Slice(result, func(i, j int) bool {
		ai := result[i].Cols * result[i].Rows
		aj := result[j].Cols * result[j].Rows
		if ai != aj {
			return ai < aj
		}
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns the board registered under name.
func Lookup(name string) (Board, error) {
	mu.RLock()
	defer mu.RUnlock()

	b, ok := boards[name]
	if !ok {
		return Board{}, fmt.Errorf("registry: unknown board %q", name)
	}

	return b, nil
}

// Exists checks if a board with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := boards[name]
	return ok
}
