// Package config provides YAML-based configuration loading for the snake
// game: board size, food count, the snake's starting state and pacing.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Snake    SnakeSettings  `yaml:"snake"`
	Controls ControlsConfig `yaml:"controls"`
}

// GridConfig defines the board.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
	Food int `yaml:"food"` // Number of food items on the board
}

// SnakeSettings defines the snake's starting state and pacing.
type SnakeSettings struct {
	StartX         int    `yaml:"start_x"`
	StartY         int    `yaml:"start_y"`
	Direction      string `yaml:"direction"`
	MoveIntervalMs int    `yaml:"move_interval_ms"`
	QueueCapacity  int    `yaml:"queue_capacity"`
}

// ControlsConfig defines host-side input handling.
type ControlsConfig struct {
	BoostHoldMs int `yaml:"boost_hold_ms"` // Boost stays on this long after a key press
}

// MoveInterval returns the time between moves at normal speed.
func (c SnakeConfig) MoveInterval() time.Duration {
	return time.Duration(c.Snake.MoveIntervalMs) * time.Millisecond
}

// BoostHold returns how long a single boost key press keeps boost held.
func (c SnakeConfig) BoostHold() time.Duration {
	return time.Duration(c.Controls.BoostHoldMs) * time.Millisecond
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Cols, c.Grid.Rows))
	}
	if c.Grid.Food < 0 {
		errs = append(errs, fmt.Errorf("food must not be negative, got %d", c.Grid.Food))
	}
	if c.Snake.MoveIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("move_interval_ms must be positive, got %d", c.Snake.MoveIntervalMs))
	}
	if c.Snake.QueueCapacity <= 0 {
		errs = append(errs, fmt.Errorf("queue_capacity must be positive, got %d", c.Snake.QueueCapacity))
	}
	if c.Controls.BoostHoldMs < 0 {
		errs = append(errs, fmt.Errorf("boost_hold_ms must not be negative, got %d", c.Controls.BoostHoldMs))
	}
	if _, err := snake.ParseDirection(c.Snake.Direction); err != nil {
		errs = append(errs, err)
	}

	start := snake.Point{X: c.Snake.StartX, Y: c.Snake.StartY}
	grid := snake.Grid{Cols: c.Grid.Cols, Rows: c.Grid.Rows}
	if c.Grid.Cols > 0 && c.Grid.Rows > 0 && !grid.Contains(start) {
		errs = append(errs, fmt.Errorf("start (%d, %d) is outside the %dx%d grid", start.X, start.Y, grid.Cols, grid.Rows))
	}

	return errors.Join(errs...)
}

// WorldConfig converts the file format into the engine's configuration.
// An unknown direction falls back to right; call Validate first to reject it.
func (c SnakeConfig) WorldConfig() snake.Config {
	dir, err := snake.ParseDirection(c.Snake.Direction)
	if err != nil {
		dir = snake.DirRight
	}
	return snake.Config{
		Cols:          c.Grid.Cols,
		Rows:          c.Grid.Rows,
		FoodCount:     c.Grid.Food,
		Start:         snake.Point{X: c.Snake.StartX, Y: c.Snake.StartY},
		Direction:     dir,
		MoveInterval:  c.MoveInterval(),
		QueueCapacity: c.Snake.QueueCapacity,
	}
}

// Marshal renders the configuration as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
