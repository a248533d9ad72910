package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/redblock/internal/core"
	"github.com/vovakirdan/redblock/internal/storage"
)

var (
	flagScoreLimit int
	flagRunLimit   int
	flagClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the top high scores, overall statistics and the most recent
rounds.

Examples:
  redblock scores
  redblock scores --limit 20 --runs 0
  redblock scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of high scores to show")
	scoresCmd.Flags().IntVar(&flagRunLimit, "runs", 10, "Number of recent runs to show (0 hides them)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs")
}

func runScores(cmd *cobra.Command, _ []string) error {
	game := newGame()
	gameID := game.ID()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores and run history cleared.")
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoreLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'redblock play' and rescue the red block to set the first high score!")
	} else {
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	if stats.Runs > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Rounds: %d  Rescued: %d  Failed: %d  Win rate: %.0f%%\n",
			stats.Runs, stats.Wins, stats.Losses, stats.WinRate()*100)
		if stats.FastestWin > 0 {
			fmt.Fprintf(out, "Fastest rescue: %.1fs after the switch\n", float64(stats.FastestWin)/1000)
		}
	}

	if flagRunLimit <= 0 {
		return nil
	}
	runs, err := store.RecentRuns(gameID, flagRunLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent Runs")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %-6s  %-6s  %-7s  %-4s  %-7s  %s\n", "Run", "Result", "Score", "Time", "Path", "Hazards", "Date")
	for _, r := range runs {
		result := "lose"
		if r.Outcome == core.OutcomeWin {
			result = "win"
		}
		elapsed := "-"
		if r.ElapsedMs > 0 {
			elapsed = fmt.Sprintf("%.1fs", float64(r.ElapsedMs)/1000)
		}
		fmt.Fprintf(out, "  %-8.8s  %-6s  %-6d  %-7s  %-4d  %-7d  %s\n",
			r.RunID, result, r.Score, elapsed, r.PathLength, r.Hazards, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
