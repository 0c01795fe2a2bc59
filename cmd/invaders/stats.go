package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var flagLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print recorded runs and a summary",
	Long: `Display the most recent runs and aggregate statistics.

Examples:
  invaders stats
  invaders stats --limit 25`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent runs to show")
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run history database: %w", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println("Recent Runs - Invaders")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to record the first run!")
		return nil
	}

	// Print header
	fmt.Printf("  %-12s  %-9s  %7s  %5s  %7s  %s\n", "Player", "Outcome", "Ticks", "Shots", "Kills", "Date")
	fmt.Printf("  %-12s  %-9s  %7s  %5s  %7s  %s\n", "------", "-------", "-----", "-----", "-----", "----")

	for _, r := range runs {
		kills := fmt.Sprintf("%d/%d", r.EnemiesDestroyed, r.EnemiesTotal)
		fmt.Printf("  %-12s  %-9s  %7d  %5d  %7s  %s\n",
			r.Player, r.Outcome, r.Ticks, r.ShotsFired, kills, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	summary, err := store.GetSummary()
	if err != nil {
		return fmt.Errorf("error computing summary: %w", err)
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Won: %d  Abandoned: %d  Accuracy: %.0f%%\n",
		summary.Runs, summary.Wins, summary.Abandoned, summary.Accuracy()*100)
	if summary.FastestWinTicks > 0 {
		fmt.Printf("Fastest win: %d ticks\n", summary.FastestWinTicks)
	}
	return nil
}
