package factory

import (
	"math/rand"

	"github.com/automoto/starlock/archetypes"
	"github.com/automoto/starlock/arena"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the per-round singletons: clock, scheduler, random
// source, match engine, round controller, tap router and spawner.
func CreateSession(ecs *ecs.ECS, seed int64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Clock.Set(session, &components.ClockData{
		Delta: 1 / float64(cfg.C.TPS),
	})
	components.Random.Set(session, &components.RandomData{
		Rand: rand.New(rand.NewSource(seed)),
	})
	match := components.NewMatch(cfg.Match.PointsPerMatch, cfg.Match.CheckDelay)
	components.Match.Set(session, &match)
	components.Round.Set(session, &components.RoundData{
		State: cfg.RoundPlaying,
		Mode:  cfg.GameModeNone,
		Level: 1,
	})
	components.TapRouter.Set(session, &components.TapRouterData{
		Radius: cfg.Tap.Radius,
	})
	components.Spawner.Set(session, &components.SpawnerData{})
	return session
}

// CreateArena creates the container, outer ring, rotation driver and force
// field from a layout.
func CreateArena(ecs *ecs.ECS, layout arena.Layout) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)
	container := components.NewContainer(
		layout.ContainerRadius,
		layout.ContainerCapacity,
		layout.ContainerSegments,
		cfg.Container.InteriorSpread,
	)
	components.Container.Set(entry, &container)

	ring := components.NewOuterRing(layout.RingInner, layout.RingOuter, layout.RingSegments)
	components.OuterRing.Set(entry, &ring)

	components.Rotation.Set(entry, &components.RotationData{
		Speed:   cfg.Rotation.DefaultSpeed,
		Running: false,
	})
	components.Orbit.Set(entry, &components.OrbitData{
		TangentialMultiplier:  cfg.Orbit.TangentialMultiplier,
		CentrifugalMultiplier: cfg.Orbit.CentrifugalMultiplier,
		MaxForce:              cfg.Orbit.MaxForce,
		MaxVelocity:           cfg.Orbit.MaxVelocity,
		Damping:               cfg.Orbit.Damping,
		MinDistance:           cfg.Orbit.MinDistance,
		ReferenceSpeed:        cfg.Orbit.ReferenceSpeed,
		IdleSpeed:             cfg.Orbit.IdleSpeed,
	})
	return entry
}
