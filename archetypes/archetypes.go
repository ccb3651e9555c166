package archetypes

import (
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Shape = newArchetype(
		tags.Shape,
		components.Shape,
		components.Body,
		components.Object,
		components.Transition,
	)
	ScorePopup = newArchetype(
		tags.ScorePopup,
		components.ScorePopup,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Arena = newArchetype(
		components.Container,
		components.OuterRing,
		components.Rotation,
		components.Orbit,
	)
	Session = newArchetype(
		components.Clock,
		components.Scheduler,
		components.Random,
		components.Match,
		components.Round,
		components.TapRouter,
		components.Spawner,
	)
	Endless = newArchetype(
		components.Endless,
	)
	Bot = newArchetype(
		components.Bot,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
