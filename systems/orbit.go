package systems

import (
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOrbitalForces pushes every registered ring shape along the rotating
// frame. It runs before body integration.
func UpdateOrbitalForces(e *ecs.ECS) {
	orbit := GetOrbit(e)
	speed := GetRotation(e).EffectiveSpeed()
	if orbit.Idle(speed) {
		return
	}
	orbit.Purge(alive(e))

	for _, shape := range orbit.Registered() {
		entry := shapeEntry(e, shape)
		if entry == nil || components.Shape.Get(entry).State != cfg.Outside {
			continue
		}
		body := components.Body.Get(entry)
		if force, ok := orbit.ForceAt(body.Position, speed); ok {
			body.AddForce(force)
		}
	}
}

// UpdateOrbitalDamping clamps and damps the velocity of ring shapes after
// integration. Shapes float undamped while the frame is idle.
func UpdateOrbitalDamping(e *ecs.ECS) {
	orbit := GetOrbit(e)
	if orbit.Idle(GetRotation(e).EffectiveSpeed()) {
		return
	}
	for _, shape := range orbit.Registered() {
		entry := shapeEntry(e, shape)
		if entry == nil || components.Shape.Get(entry).State != cfg.Outside {
			continue
		}
		body := components.Body.Get(entry)
		body.Velocity = orbit.DampVelocity(body.Velocity)
	}
}
