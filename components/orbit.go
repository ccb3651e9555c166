package components

import (
	stdmath "math"

	"github.com/automoto/starlock/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// OrbitData is the force field that drags outer ring shapes along the
// rotating frame.
type OrbitData struct {
	TangentialMultiplier  float64
	CentrifugalMultiplier float64
	MaxForce              float64
	MaxVelocity           float64
	Damping               float64
	MinDistance           float64
	ReferenceSpeed        float64
	IdleSpeed             float64

	registered EntitySet
}

var Orbit = donburi.NewComponentType[OrbitData]()

// Register adds a shape to the field. Registering twice is a no-op.
func (o *OrbitData) Register(e donburi.Entity) bool {
	return o.registered.Add(e)
}

// Unregister removes a shape from the field.
func (o *OrbitData) Unregister(e donburi.Entity) bool {
	return o.registered.Remove(e)
}

// IsRegistered reports whether the field acts on e.
func (o *OrbitData) IsRegistered(e donburi.Entity) bool {
	return o.registered.Contains(e)
}

// Registered returns the registered shapes.
func (o *OrbitData) Registered() []donburi.Entity {
	return o.registered.Snapshot()
}

// Count returns the number of registered shapes.
func (o *OrbitData) Count() int {
	return o.registered.Len()
}

// Clear unregisters every shape.
func (o *OrbitData) Clear() {
	o.registered.Clear()
}

// Purge drops shapes that no longer exist.
func (o *OrbitData) Purge(alive func(donburi.Entity) bool) {
	o.registered.Purge(alive)
}

// SetForceMultipliers changes the tangential and centrifugal strength.
func (o *OrbitData) SetForceMultipliers(tangential, centrifugal float64) {
	o.TangentialMultiplier = tangential
	o.CentrifugalMultiplier = centrifugal
}

// Idle reports whether the rotation is too slow for the field to act.
func (o *OrbitData) Idle(signedSpeed float64) bool {
	return stdmath.Abs(signedSpeed) < o.IdleSpeed
}

// ForceAt computes the force for a shape at local position pos under the
// given signed rotation speed. ok is false when no force applies.
func (o *OrbitData) ForceAt(pos math.Vec2, signedSpeed float64) (force math.Vec2, ok bool) {
	if o.Idle(signedSpeed) {
		return math.Vec2{}, false
	}
	dist := pos.Magnitude()
	if dist < o.MinDistance {
		return math.Vec2{}, false
	}

	dirOut := pos.DivScalar(dist)
	var tangent math.Vec2
	if signedSpeed > 0 {
		tangent = math.Vec2{X: -dirOut.Y, Y: dirOut.X}
	} else {
		tangent = math.Vec2{X: dirOut.Y, Y: -dirOut.X}
	}

	speedFactor := stdmath.Abs(signedSpeed) / o.ReferenceSpeed
	tangential := tangent.MulScalar(o.TangentialMultiplier * speedFactor)
	centrifugal := dirOut.MulScalar(o.CentrifugalMultiplier * speedFactor * dist)

	total := tangential.Add(centrifugal)
	return gamemath.ClampMagnitude(total, o.MaxForce), true
}

// DampVelocity clamps v to MaxVelocity and applies the per-step damping.
func (o *OrbitData) DampVelocity(v math.Vec2) math.Vec2 {
	return gamemath.ClampMagnitude(v, o.MaxVelocity).MulScalar(o.Damping)
}
