package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usmanser71/runner-game-pro/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs, or the latest runs of one player.

Examples:
  runner scores
  runner scores --limit 25
  runner scores --player alice`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show this player's latest runs")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	var runs []storage.RunRecord
	if flagScoresPlayer != "" {
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
		fmt.Printf("Latest runs - %s\n", flagScoresPlayer)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
		fmt.Println("High Scores - Time Runner")
	}
	if err != nil {
		store.Close()
		fail("retrieving runs: %v", err)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-6s  %s\n", "#", "Player", "Score", "Coins", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-6s  %s\n", "-", "------", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-7d  %-6d  %s\n", i+1, r.Player, r.Score, r.Coins, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(flagScoresPlayer); err == nil {
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Coins collected: %d\n",
			stats.Runs, stats.HighScore, stats.AvgScore, stats.TotalCoins)
	}
}
