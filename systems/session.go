package systems

import (
	"time"

	"github.com/automoto/starlock/arena"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sessionEntry returns the session singleton, creating a time-seeded one
// with a warning when the world was built without it.
func sessionEntry(e *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Round.First(e.World); ok {
		return entry
	}
	log.Warn("no session configured, creating one with a time seed")
	return factory.CreateSession(e, time.Now().UnixNano())
}

// arenaEntry returns the arena singleton, creating the default arena with a
// warning when the world was built without it.
func arenaEntry(e *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Container.First(e.World); ok {
		return entry
	}
	log.Warn("no arena configured, using default layout")
	return factory.CreateArena(e, arena.Default())
}

// GetSpace returns the collision space, creating one sized to the arena if
// needed.
func GetSpace(e *ecs.ECS) *components.SpaceData {
	entry, ok := components.Space.First(e.World)
	if !ok {
		ring := GetOuterRing(e)
		entry = factory.CreateSpace(e, ring.OuterRadius+1, cfg.Camera.PixelsPerUnit)
	}
	return components.Space.Get(entry)
}

// GetCamera returns the camera, or nil when the scene has none.
func GetCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}

func GetClock(e *ecs.ECS) *components.ClockData {
	return components.Clock.Get(sessionEntry(e))
}

func GetScheduler(e *ecs.ECS) *components.SchedulerData {
	return components.Scheduler.Get(sessionEntry(e))
}

func GetRandom(e *ecs.ECS) *components.RandomData {
	return components.Random.Get(sessionEntry(e))
}

func GetMatch(e *ecs.ECS) *components.MatchData {
	return components.Match.Get(sessionEntry(e))
}

func GetRound(e *ecs.ECS) *components.RoundData {
	return components.Round.Get(sessionEntry(e))
}

func GetTapRouter(e *ecs.ECS) *components.TapRouterData {
	return components.TapRouter.Get(sessionEntry(e))
}

func GetSpawner(e *ecs.ECS) *components.SpawnerData {
	return components.Spawner.Get(sessionEntry(e))
}

func GetContainer(e *ecs.ECS) *components.ContainerData {
	return components.Container.Get(arenaEntry(e))
}

func GetOuterRing(e *ecs.ECS) *components.OuterRingData {
	return components.OuterRing.Get(arenaEntry(e))
}

func GetRotation(e *ecs.ECS) *components.RotationData {
	return components.Rotation.Get(arenaEntry(e))
}

func GetOrbit(e *ecs.ECS) *components.OrbitData {
	return components.Orbit.Get(arenaEntry(e))
}

// shapeEntry returns the entry for a live shape, or nil when the reference
// is stale.
func shapeEntry(e *ecs.ECS, shape donburi.Entity) *donburi.Entry {
	if !e.World.Valid(shape) {
		return nil
	}
	entry := e.World.Entry(shape)
	if !entry.HasComponent(components.Shape) {
		return nil
	}
	return entry
}

// alive reports whether a shape reference still points at a live shape.
func alive(e *ecs.ECS) func(donburi.Entity) bool {
	return func(shape donburi.Entity) bool {
		return shapeEntry(e, shape) != nil
	}
}
