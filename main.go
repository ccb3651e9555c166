// starlock is a rotating-ring shape matching puzzle.
//
// Usage:
//
//	starlock                 - Open the game window (same as play)
//	starlock play            - Open the game window
//	starlock simulate        - Run a headless round with an auto-tapper
//	starlock scores          - Show endless-mode highscores
//	starlock progress reset  - Forget level progress
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set highscore database path
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/automoto/starlock/arena"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "starlock"

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Starlock - tap shapes into the lock, match pairs, keep it from filling up",
	Long: `Starlock is an arcade puzzle. Shapes drift in a rotating ring; tap one
to send it into the central lock. Two matching shapes inside the lock
clear each other. Clear the ring and the lock to win; fill the lock and
the round is lost.

Available commands:
  play      - Open the game window (default)
  simulate  - Run a headless round with an auto-tapper
  scores    - View endless-mode highscores
  progress  - Reset or unlock level progress`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starlock/scores.db", "Path to highscore database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(progressCmd)
}

func setupLogging() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          appName,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
}

// loadLayout reads the embedded arena map, falling back to the built-in
// geometry.
func loadLayout() arena.Layout {
	layout, err := arena.LoadEmbedded()
	if err != nil {
		log.Warn("could not load arena map, using defaults", "err", err)
		return arena.Default()
	}
	return layout
}
