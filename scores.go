package main

import (
	"fmt"

	"github.com/automoto/starlock/persistence"
	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show endless-mode highscores",
	Long: `Display the best endless-mode runs.

Examples:
  starlock scores
  starlock scores --db /tmp/scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := persistence.OpenHighscores(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening highscore database: %w", err)
	}
	defer store.Close()

	entries, err := store.Top()
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Endless Highscores")
	fmt.Fprintln(out)

	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'starlock play --endless' to set the first highscore!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %s\n", "----", "-----", "----", "----")
	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-8d  %-6s  %s\n", i+1, entry.Score, persistence.FormatTime(entry.Seconds), dateStr)
	}
	return nil
}
