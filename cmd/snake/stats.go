package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for every board size played",
	Long:  `Shows games played, best and average score and the longest snake for each board size.`,
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	maxIDLen := len("Board")
	for id := range stats {
		ids = append(ids, id)
		maxIDLen = max(maxIDLen, len(id))
	}
	sort.Strings(ids)

	fmt.Printf("  %-*s  %6s  %6s  %7s  %7s  %s\n", maxIDLen, "Board", "Games", "Best", "Avg", "Longest", "Last played")
	fmt.Printf("  %-*s  %6s  %6s  %7s  %7s  %s\n", maxIDLen, "-----", "-----", "----", "---", "-------", "-----------")

	for _, id := range ids {
		s := stats[id]
		last := "-"
		if !s.LastPlayed.IsZero() {
			last = s.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-*s  %6d  %6d  %7.1f  %7d  %s\n", maxIDLen, id, s.GamesCount, s.HighScore, s.AvgScore, s.MaxLength, last)
	}
}
