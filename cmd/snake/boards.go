package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List the board presets",
	Long: `List the named boards accepted by --board.

Any size can also be given directly as COLSxROWS.

Examples:
  snake boards
  snake play --board mini
  snake play --board 25x25`,
	Args: cobra.NoArgs,
	Run:  runBoards,
}

func runBoards(_ *cobra.Command, _ []string) {
	fmt.Println("Boards:")
	fmt.Println()

	for _, b := range registry.List() {
		size := fmt.Sprintf("%dx%d", b.Cols, b.Rows)
		fmt.Printf("  %-8s  %-6s  food %-2d  %s\n", b.Name, size, b.Food, b.Title)
	}

	fmt.Println()
	fmt.Println("Use: snake play --board <name>")
}

// applyBoard replaces the grid in cfg with a preset or a COLSxROWS size.
// An empty board leaves cfg alone. A plain size keeps the configured food.
func applyBoard(cfg config.SnakeConfig, board string) (config.SnakeConfig, error) {
	if board == "" {
		return cfg, nil
	}

	if b, err := registry.Lookup(board); err == nil {
		cfg.Grid.Cols = b.Cols
		cfg.Grid.Rows = b.Rows
		cfg.Grid.Food = b.Food
	} else {
		cols, rows, err := parseBoard(board)
		if err != nil {
			return cfg, err
		}
		cfg.Grid.Cols = cols
		cfg.Grid.Rows = rows
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("board %q: %w", board, err)
	}
	return cfg, nil
}

// parseBoard converts "COLSxROWS" into grid dimensions.
func parseBoard(board string) (int, int, error) {
	invalid := fmt.Errorf("invalid board %q, expected a preset name or COLSxROWS", board)

	cols, rows, ok := strings.Cut(strings.ToLower(board), "x")
	if !ok {
		return 0, 0, invalid
	}
	c, err := strconv.Atoi(cols)
	if err != nil || c <= 0 {
		return 0, 0, invalid
	}
	r, err := strconv.Atoi(rows)
	if err != nil || r <= 0 {
		return 0, 0, invalid
	}
	return c, r, nil
}
