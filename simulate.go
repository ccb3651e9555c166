package main

import (
	"fmt"

	"github.com/automoto/starlock/components"
	"github.com/automoto/starlock/config"
	"github.com/automoto/starlock/persistence"
	"github.com/automoto/starlock/scenes"
	"github.com/automoto/starlock/systems"
	"github.com/spf13/cobra"
)

var (
	flagTicks       int
	flagBotInterval float64
	flagSimLevel    int
	flagSimEndless  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless round with an auto-tapper",
	Long: `Run one round without a window. A bot taps a ring shape at a fixed
interval, preferring shapes whose partner is already in the lock.

Examples:
  starlock simulate --level 3 --seed 7
  starlock simulate --endless --ticks 36000`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 60*60*5, "Maximum simulation steps")
	simulateCmd.Flags().Float64Var(&flagBotInterval, "bot-interval", 0.5, "Seconds between bot taps")
	simulateCmd.Flags().IntVar(&flagSimLevel, "level", 1, "Level to play")
	simulateCmd.Flags().BoolVar(&flagSimEndless, "endless", false, "Play endless mode")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	mode := config.GameModeLevels
	if flagSimEndless {
		mode = config.GameModeEndless
	}
	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	gameplay, err := scenes.BuildGameplay(scenes.GameplayOptions{
		Mode:        mode,
		Level:       flagSimLevel,
		Seed:        seed,
		Layout:      loadLayout(),
		BotInterval: flagBotInterval,
	})
	if err != nil {
		return err
	}
	defer gameplay.Close()

	e := gameplay.ECS
	ticks := 0
	for ; ticks < flagTicks; ticks++ {
		gameplay.Step()
		if systems.GetRound(e).ShowSummary {
			break
		}
	}

	round := systems.GetRound(e)
	match := systems.GetMatch(e)
	outcome := "unfinished"
	switch {
	case round.IsVictory():
		outcome = "victory"
	case round.IsGameOver():
		outcome = "game over"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Mode:     %s\n", round.Mode)
	if round.Mode == config.GameModeLevels {
		fmt.Fprintf(out, "Level:    %d (%d pairs)\n", round.Level, round.Pairs)
	}
	fmt.Fprintf(out, "Outcome:  %s\n", outcome)
	fmt.Fprintf(out, "Score:    %d (%d matches)\n", match.Score, match.Matches)
	fmt.Fprintf(out, "Time:     %s (%d ticks)\n", persistence.FormatTime(round.Elapsed), ticks)
	if round.IsVictory() {
		fmt.Fprintf(out, "Stars:    %d\n", persistence.Stars(round.FinalScore, round.Pairs, config.Match.PointsPerMatch))
	}
	if entry, ok := components.Bot.First(e.World); ok {
		bot := components.Bot.Get(entry)
		fmt.Fprintf(out, "Bot taps: %d launched, %d refused\n", bot.Taps, bot.Misses)
	}
	return nil
}
