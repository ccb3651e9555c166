package systems

import (
	"github.com/automoto/starlock/components"
	"github.com/automoto/starlock/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePhysics integrates every dynamic body over one fixed step: forces
// into velocity, linear drag, then velocity into position. Accumulated
// forces are cleared for all bodies.
func UpdatePhysics(e *ecs.ECS) {
	dt := GetClock(e).Delta
	tags.Shape.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if !body.Dynamic {
			body.Force = math.Vec2{}
			return
		}
		integrateBody(body, dt)
	})
}

func integrateBody(body *components.BodyData, dt float64) {
	mass := body.Mass
	if mass <= 0 {
		mass = 1
	}
	body.Velocity.X += body.Force.X / mass * dt
	body.Velocity.Y += body.Force.Y / mass * dt

	if body.LinearDrag > 0 {
		drag := 1 / (1 + body.LinearDrag*dt)
		body.Velocity.X *= drag
		body.Velocity.Y *= drag
	}

	body.Position.X += body.Velocity.X * dt
	body.Position.Y += body.Velocity.Y * dt
	body.Force = math.Vec2{}
}
