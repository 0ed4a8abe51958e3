package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Cols: 20,
			Rows: 20,
			Food: 3,
		},
		Snake: SnakeSettings{
			StartX:         0,
			StartY:         0,
			Direction:      "right",
			MoveIntervalMs: 160,
			QueueCapacity:  3,
		},
		Controls: ControlsConfig{
			BoostHoldMs: 150,
		},
	}
}
