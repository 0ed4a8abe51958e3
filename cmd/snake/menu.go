package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start snake with an interactive menu",
	Long: `Start snake in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Leaving a paused or finished game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  snake menu
  snake menu --fps 30
  snake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closer := newFileLogger()
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.RunSession(store, tui.SessionOptions{
		Game:      cfg.WorldConfig(),
		Runtime:   runtimeConfig(),
		BoostHold: cfg.BoostHold(),
		Player:    storage.LocalPlayer,
		SessionID: uuid.NewString(),
		Logger:    logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
