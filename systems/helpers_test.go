package systems

import (
	stdmath "math"
	"testing"

	"github.com/automoto/starlock/arena"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/signal"
	"github.com/automoto/starlock/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// newTestECS builds a headless world with a session, the default arena and a
// collision space. No camera is created.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	layout := arena.Default()
	factory.CreateSession(e, 1)
	factory.CreateArena(e, layout)
	factory.CreateSpace(e, layout.RingOuter+1, layout.PixelsPerUnit)
	return e
}

// startEmptyRound wires the gameplay and puts a level round in play without
// spawning any shapes.
func startEmptyRound(t *testing.T, e *ecs.ECS) *signal.Scope {
	t.Helper()
	scope := WireGameplay(e)
	t.Cleanup(scope.Close)

	round := GetRound(e)
	round.State = cfg.RoundPlaying
	round.Mode = cfg.GameModeLevels
	round.Level = 1
	GetRotation(e).Resume()
	GetTapRouter(e).SetInputEnabled(true)
	return scope
}

// advance runs the time-driven systems for the given number of seconds.
func advance(e *ecs.ECS, seconds float64) {
	frames := int(stdmath.Ceil(seconds*float64(cfg.C.TPS))) + 1
	for i := 0; i < frames; i++ {
		UpdateClock(e)
		UpdateScheduler(e)
		UpdateTransitions(e)
	}
}

func vec(x, y float64) math.Vec2 {
	return math.Vec2{X: x, Y: y}
}

func stateOf(t *testing.T, e *ecs.ECS, shape donburi.Entity) cfg.LifecycleState {
	t.Helper()
	entry := shapeEntry(e, shape)
	if entry == nil {
		t.Fatalf("shape %v is not alive", shape)
	}
	return components.Shape.Get(entry).State
}

func shapeOf(t *testing.T, e *ecs.ECS, shape donburi.Entity) *components.ShapeData {
	t.Helper()
	entry := shapeEntry(e, shape)
	if entry == nil {
		t.Fatalf("shape %v is not alive", shape)
	}
	return components.Shape.Get(entry)
}

func bodyOf(t *testing.T, e *ecs.ECS, shape donburi.Entity) *components.BodyData {
	t.Helper()
	entry := shapeEntry(e, shape)
	if entry == nil {
		t.Fatalf("shape %v is not alive", shape)
	}
	return components.Body.Get(entry)
}

func lengthOf(p math.Vec2) float64 {
	return stdmath.Hypot(p.X, p.Y)
}
