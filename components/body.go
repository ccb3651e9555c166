package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData is the rigid body of a shape. Position is in the pivot's local
// frame, in world units.
type BodyData struct {
	Position   math.Vec2
	Velocity   math.Vec2
	Force      math.Vec2 // Accumulated continuous force, cleared after each step
	Mass       float64
	LinearDrag float64
	Radius     float64
	Dynamic    bool // Simulated and colliding; false while frozen
}

var Body = donburi.NewComponentType[BodyData]()

// AddForce accumulates a continuous force for the next step.
func (b *BodyData) AddForce(f math.Vec2) {
	b.Force.X += f.X
	b.Force.Y += f.Y
}

// AddImpulse changes velocity immediately.
func (b *BodyData) AddImpulse(j math.Vec2) {
	m := b.Mass
	if m <= 0 {
		m = 1
	}
	b.Velocity.X += j.X / m
	b.Velocity.Y += j.Y / m
}

// Freeze makes the body kinematic and zeroes its motion.
func (b *BodyData) Freeze() {
	b.Dynamic = false
	b.Velocity = math.Vec2{}
	b.Force = math.Vec2{}
}

// Wake makes the body dynamic again.
func (b *BodyData) Wake() {
	b.Dynamic = true
}
