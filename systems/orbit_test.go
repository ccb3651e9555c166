package systems

import (
	"testing"

	cfg "github.com/automoto/starlock/config"
)

func TestOrbitalForceFollowsRotationDirection(t *testing.T) {
	tests := []struct {
		name      string
		clockwise bool
		wantSign  float64
	}{
		{"counter-clockwise", false, 1},
		{"clockwise", true, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			shape := SpawnShape(e, cfg.Circle, cfg.Red, vec(3, 0)).Entity()
			rotation := GetRotation(e)
			rotation.SetSpeed(60)
			rotation.SetDirection(tt.clockwise)
			rotation.Resume()

			UpdateOrbitalForces(e)

			force := bodyOf(t, e, shape).Force
			if force.Y*tt.wantSign <= 0 {
				t.Errorf("tangential force %v, want sign %v", force.Y, tt.wantSign)
			}
			if force.X <= 0 {
				t.Errorf("centrifugal force %v, want outward", force.X)
			}
		})
	}
}

func TestOrbitalForceIdleWhenStopped(t *testing.T) {
	e := newTestECS(t)
	shape := SpawnShape(e, cfg.Circle, cfg.Red, vec(3, 0)).Entity()
	body := bodyOf(t, e, shape)
	body.Velocity = vec(1, 1)

	rotation := GetRotation(e)
	rotation.SetSpeed(60)
	rotation.Stop()

	UpdateOrbitalForces(e)
	UpdateOrbitalDamping(e)

	if body.Force != vec(0, 0) {
		t.Errorf("force = %v, want none while stopped", body.Force)
	}
	if body.Velocity != vec(1, 1) {
		t.Errorf("velocity = %v, want undamped while stopped", body.Velocity)
	}
}

func TestOrbitalForceSkipsLaunchedShapes(t *testing.T) {
	e := newTestECS(t)
	startEmptyRound(t, e)
	shape := SpawnShape(e, cfg.Circle, cfg.Red, vec(3, 0)).Entity()
	GetRotation(e).SetSpeed(60)

	HandleLocalTap(e, vec(3, 0))
	UpdateOrbitalForces(e)

	if got := bodyOf(t, e, shape).Force; got != vec(0, 0) {
		t.Errorf("force on launched shape = %v, want none", got)
	}
}

func TestPhysicsKeepsRingShapesInBand(t *testing.T) {
	e := newTestECS(t)
	startEmptyRound(t, e)
	GetRotation(e).SetSpeed(120)
	SpawnPairs(e, 5)

	for i := 0; i < 600; i++ {
		UpdateClock(e)
		UpdateRotation(e)
		UpdateOrbitalForces(e)
		UpdatePhysics(e)
		UpdateOrbitalDamping(e)
		UpdateCollisions(e)
	}

	ring := GetOuterRing(e)
	const slack = 1e-6
	for _, shape := range ring.Shapes() {
		r := lengthOf(bodyOf(t, e, shape).Position)
		if r < ring.InnerRadius-slack || r > ring.OuterRadius+slack {
			t.Errorf("shape at radius %v left the band [%v, %v]", r, ring.InnerRadius, ring.OuterRadius)
		}
	}
}
