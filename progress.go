package main

import (
	"fmt"

	"github.com/automoto/starlock/config"
	"github.com/automoto/starlock/persistence"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show, reset or unlock level progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		progress, err := persistence.OpenProgress(appName)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for level := 1; level <= config.TotalLevels(); level++ {
			status := "locked"
			if progress.IsUnlocked(level) {
				status = fmt.Sprintf("%d stars, best %d", progress.LevelStars(level), progress.BestScore(level))
			}
			fmt.Fprintf(out, "  Level %-2d  %s\n", level, status)
		}
		return nil
	},
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget all level progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		progress, err := persistence.OpenProgress(appName)
		if err != nil {
			return err
		}
		if err := progress.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
		return nil
	},
}

var progressUnlockCmd = &cobra.Command{
	Use:   "unlock-all",
	Short: "Unlock every level",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		progress, err := persistence.OpenProgress(appName)
		if err != nil {
			return err
		}
		if err := progress.UnlockAll(config.TotalLevels()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "All %d levels unlocked.\n", config.TotalLevels())
		return nil
	},
}

func init() {
	progressCmd.AddCommand(progressResetCmd)
	progressCmd.AddCommand(progressUnlockCmd)
}
