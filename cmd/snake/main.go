// snake is a terminal snake game on a wraparound grid.
//
// Usage:
//
//	snake play               - Play a game
//	snake menu               - Start the menu (play, high scores)
//	snake serve              - Start SSH server for remote play
//	snake scores             - Show high scores
//	snake stats              - Show statistics for every board size played
//	snake config             - Print the effective configuration
//	snake boards             - List the board presets
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.snake/scores.db)
//	--config <path>  - Use a specific YAML config
//	--board <board>  - Board preset name or COLSxROWS
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagBoard   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake around a wraparound grid",
	Long: `Snake is a terminal game: eat food to grow, and don't run into yourself.
The board wraps around at every edge.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View statistics per board size
  config   - Print the effective configuration
  boards   - List the board presets

Examples:
  snake play
  snake play --seed 42
  snake menu
  snake serve --ssh :2222
  snake play --board wide
  snake scores --board 30x15`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (interactive modes log nothing otherwise)")
	rootCmd.PersistentFlags().StringVar(&flagBoard, "board", "", "Board preset name or COLSxROWS (overrides the config grid)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(boardsCmd)
}

// loadConfig loads the snake config, applies --board, or exits with an error.
func loadConfig() config.SnakeConfig {
	cfg, _ := loadConfigWithSource()
	return cfg
}

func loadConfigWithSource() (config.SnakeConfig, config.Source) {
	cfg, src, err := config.LoadWithSource(flagConfig)
	if err == nil {
		cfg, err = applyBoard(cfg, flagBoard)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, src
}

// newFileLogger returns a logger writing to --log, or one that discards
// everything. The alternate screen cannot share stderr with log output.
func newFileLogger() (*log.Logger, io.Closer) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil)
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	return logger, f
}

// runtimeConfig builds the platform config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
