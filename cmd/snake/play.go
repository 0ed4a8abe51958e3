package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snake. The game starts paused.

Controls:
  Arrows/WASD  - Steer
  Z            - Boost (double speed while held)
  Space/P      - Pause / resume (starts a new game after game over)
  R            - New game
  Esc/B        - Leave (when paused or over)
  Ctrl+S       - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./big-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closer := newFileLogger()
	defer closer.Close()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(store, tui.GameOptions{
		Game:      cfg.WorldConfig(),
		Runtime:   runtimeConfig(),
		BoostHold: cfg.BoostHold(),
		Player:    storage.LocalPlayer,
		SessionID: uuid.NewString(),
		Logger:    logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
