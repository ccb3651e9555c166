package systems

import (
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/notify"
	"github.com/automoto/starlock/signal"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// WireGameplay connects the round controller and the match engine to the
// zone notifications. Closing the returned scope disconnects everything.
func WireGameplay(e *ecs.ECS) *signal.Scope {
	scope := &signal.Scope{}
	WireMatchEngine(e, scope)

	scope.Add(
		GetContainer(e).Events.BecameFull.Subscribe(func(int) {
			TriggerGameOver(e)
		}),
		GetOuterRing(e).Events.BecameEmpty.Subscribe(func(struct{}) {
			CheckVictory(e)
		}),
		GetMatch(e).Events.MatchFound.Subscribe(func(components.MatchFound) {
			CheckVictory(e)
		}),
	)
	return scope
}

// StartRound applies a level's configuration, enables input and spawns the
// round's shapes. Level numbers are clamped to the table.
func StartRound(e *ecs.ECS, mode cfg.GameModeID, level int) {
	round := GetRound(e)
	round.State = cfg.RoundPlaying
	round.Mode = mode
	round.Elapsed = 0
	round.FinalScore = 0
	round.HasNextLevel = false
	round.ShowSummary = false
	ResetMatchEngine(e)

	rotation := GetRotation(e)
	container := GetContainer(e)

	if mode == cfg.GameModeEndless {
		round.Level = 0
		round.Pairs = 0
		container.SetCapacity(cfg.Container.MaxShapesInside)
		rotation.SetSpeed(cfg.Endless.StartSpeed)
		rotation.SetDirection(false)
	} else {
		round.Level = cfg.ClampLevel(level)
		levelCfg := cfg.GetLevel(round.Level)
		round.Pairs = levelCfg.Pairs
		container.SetCapacity(levelCfg.MaxShapesInside)
		rotation.SetSpeed(levelCfg.RotationSpeed)
		rotation.SetDirection(levelCfg.ReverseRotation)
	}
	rotation.Resume()
	GetTapRouter(e).SetInputEnabled(true)

	log.Info("round started", "mode", mode, "level", round.Level, "pairs", round.Pairs,
		"speed", rotation.Speed, "capacity", container.Capacity)

	if mode == cfg.GameModeEndless {
		StartEndless(e)
		return
	}
	SpawnPairs(e, round.Pairs)
}

// TriggerGameOver ends the round as lost. It is a no-op once the round has
// ended.
func TriggerGameOver(e *ecs.ECS) {
	round := GetRound(e)
	if round.IsTerminal() {
		return
	}
	round.State = cfg.RoundGameOver
	round.FinalScore = GetMatch(e).Score
	endRound(e)

	log.Info("game over", "mode", round.Mode, "level", round.Level, "score", round.FinalScore)
	notify.GameOver.Publish(e.World, notify.GameOverEvent{
		Mode:    round.Mode,
		Level:   round.Level,
		Score:   round.FinalScore,
		Elapsed: round.Elapsed,
	})
	scheduleSummary(e, false)
}

// CheckVictory ends the round as won when no spawned shape is left outside
// or in flight and the container holds no unmatched shape. Endless rounds
// cannot be won.
func CheckVictory(e *ecs.ECS) bool {
	round := GetRound(e)
	if round.IsTerminal() || round.Mode == cfg.GameModeEndless {
		return false
	}
	if SpawnerActiveCount(e) != 0 || GetContainedCount(e) != 0 {
		return false
	}

	round.State = cfg.RoundVictory
	round.FinalScore = GetMatch(e).Score
	round.HasNextLevel = round.Level < cfg.TotalLevels()
	endRound(e)

	log.Info("victory", "level", round.Level, "score", round.FinalScore)
	notify.Victory.Publish(e.World, notify.VictoryEvent{
		Level:        round.Level,
		Pairs:        round.Pairs,
		Score:        round.FinalScore,
		HasNextLevel: round.HasNextLevel,
	})
	scheduleSummary(e, true)
	return true
}

func endRound(e *ecs.ECS) {
	GetRotation(e).Stop()
	GetTapRouter(e).SetInputEnabled(false)
}

func scheduleSummary(e *ecs.ECS, victory bool) {
	Schedule(e, cfg.Round.SummaryDelay, func() {
		round := GetRound(e)
		round.ShowSummary = true
		notify.Summary.Publish(e.World, notify.SummaryEvent{
			Victory: victory,
			Score:   round.FinalScore,
		})
	})
}
