package systems

import (
	"testing"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/yohamta/donburi"
)

func TestMoveInsideOnlyFromOutside(t *testing.T) {
	e := newTestECS(t)
	entry := SpawnShape(e, cfg.Circle, cfg.Red, vec(3, 0))

	if !MoveInside(e, entry, vec(0, 0), nil) {
		t.Fatal("MoveInside from Outside was refused")
	}
	if MoveInside(e, entry, vec(0, 0), nil) {
		t.Error("MoveInside from MovingInside was accepted")
	}
	if RequestTransitionTo(e, entry, cfg.Outside, TransitionRequest{}) {
		t.Error("backward transition was accepted")
	}
	if got := stateOf(t, e, entry.Entity()); got != cfg.MovingInside {
		t.Errorf("state = %v, want MovingInside", got)
	}
}

func TestColliderFollowsLifecycle(t *testing.T) {
	e := newTestECS(t)
	entry := SpawnShape(e, cfg.Square, cfg.Blue, vec(3, 0))
	shape := entry.Entity()

	check := func(when string) {
		t.Helper()
		entry := shapeEntry(e, shape)
		state := components.Shape.Get(entry).State
		body := components.Body.Get(entry)
		inSpace := components.Object.Get(entry).InSpace()
		if inSpace != state.HasCollider() || body.Dynamic != state.HasCollider() {
			t.Errorf("%s: state %v has collider %v dynamic %v", when, state, inSpace, body.Dynamic)
		}
	}

	check("spawned")

	landed := false
	MoveInside(e, entry, vec(0.5, 0.5), func() { landed = true })
	check("launched")

	advance(e, cfg.Shape.MoveInsideDuration+0.05)
	if !landed {
		t.Fatal("completion callback did not run")
	}
	if got := bodyOf(t, e, shape).Position; got != vec(0.5, 0.5) {
		t.Errorf("landed at %v, want target", got)
	}
	check("inside")

	RequestTransitionTo(e, shapeEntry(e, shape), cfg.Matched, TransitionRequest{})
	check("matched")

	advance(e, cfg.Shape.MatchedScaleDuration+0.1)
	if e.World.Valid(shape) {
		t.Error("matched shape should be destroyed after its scale-out")
	}
}

func TestDestroyShapeLeavesEveryZone(t *testing.T) {
	e := newTestECS(t)
	startEmptyRound(t, e)
	var shapes []donburi.Entity
	for _, x := range []float64{3, -3} {
		shapes = append(shapes, SpawnShape(e, cfg.Diamond, cfg.Purple, vec(x, 0)).Entity())
	}
	HandleLocalTap(e, vec(-3, 0))
	advance(e, cfg.Shape.MoveInsideDuration+0.05)

	for _, shape := range shapes {
		DestroyShape(e, shape)
		DestroyShape(e, shape)
	}

	if GetOuterRing(e).Count() != 0 || GetContainer(e).Count() != 0 || GetOrbit(e).Count() != 0 {
		t.Error("destroyed shapes are still referenced by a zone")
	}
	if GetMatch(e).TrackedCount() != 0 {
		t.Error("destroyed shapes are still tracked")
	}
	if got := SpawnerActiveCount(e); got != 0 {
		t.Errorf("SpawnerActiveCount() = %d, want 0", got)
	}
}

func TestMovingShapeIgnoresLateDestroy(t *testing.T) {
	e := newTestECS(t)
	startEmptyRound(t, e)
	shape := SpawnShape(e, cfg.Triangle, cfg.Green, vec(3, 0)).Entity()

	HandleLocalTap(e, vec(3, 0))
	DestroyShape(e, shape)
	advance(e, cfg.Shape.MoveInsideDuration+0.05)

	container := GetContainer(e)
	if container.Count() != 0 || container.Reserved() != 0 {
		t.Errorf("container count %d reserved %d, want both 0", container.Count(), container.Reserved())
	}
}
