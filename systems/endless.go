package systems

import (
	stdmath "math"

	"github.com/automoto/starlock/archetypes"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

func newEndlessData() components.EndlessData {
	return components.EndlessData{
		SpawnInterval:   cfg.Endless.SpawnInterval,
		DifficultyLevel: 1,
	}
}

// getOrCreateEndless returns the endless director state, creating if needed.
func getOrCreateEndless(e *ecs.ECS) *components.EndlessData {
	entry, ok := components.Endless.First(e.World)
	if !ok {
		entry = archetypes.Endless.Spawn(e)
		data := newEndlessData()
		components.Endless.Set(entry, &data)
	}
	return components.Endless.Get(entry)
}

// StartEndless resets the director and spawns the opening shapes.
func StartEndless(e *ecs.ECS) {
	endless := getOrCreateEndless(e)
	*endless = newEndlessData()
	for i := 0; i < cfg.Endless.InitialShapes; i++ {
		SpawnRandomShape(e)
		endless.Spawned++
	}
}

// UpdateEndless spawns a shape every SpawnInterval while fewer than
// MaxShapesOnScreen spawned shapes are alive, and raises the difficulty every
// SpeedIncreaseInterval.
func UpdateEndless(e *ecs.ECS) {
	round := GetRound(e)
	if round.Mode != cfg.GameModeEndless || round.IsTerminal() {
		return
	}
	endless := getOrCreateEndless(e)
	dt := GetClock(e).Delta

	endless.SpawnTimer += dt
	if endless.SpawnTimer >= endless.SpawnInterval {
		endless.SpawnTimer = 0
		if SpawnerLiveCount(e) < cfg.Endless.MaxShapesOnScreen {
			SpawnRandomShape(e)
			endless.Spawned++
		}
	}

	endless.SpeedTimer += dt
	if endless.SpeedTimer >= cfg.Endless.SpeedIncreaseInterval {
		endless.SpeedTimer = 0
		raiseDifficulty(e, endless)
	}
}

// raiseDifficulty bumps the level, shortens the spawn interval and speeds up
// the rotation. Speed and interval saturate at their limits; the level and
// the reversals keep going.
func raiseDifficulty(e *ecs.ECS, endless *components.EndlessData) {
	endless.DifficultyLevel++
	endless.SpawnInterval = stdmath.Max(cfg.Endless.MinSpawnInterval,
		endless.SpawnInterval-cfg.Endless.SpawnIntervalDecrease)

	rotation := GetRotation(e)
	if endless.DifficultyLevel%cfg.Endless.ReversalEvery == 0 {
		rotation.SetDirection(endless.DifficultyLevel%10 < 5)
	}
	rotation.SetSpeed(stdmath.Min(cfg.Endless.MaxSpeed, rotation.Speed+cfg.Endless.SpeedIncrease))

	log.Debug("endless difficulty raised",
		"level", endless.DifficultyLevel,
		"interval", endless.SpawnInterval,
		"speed", rotation.Speed,
		"clockwise", rotation.Clockwise)
}
