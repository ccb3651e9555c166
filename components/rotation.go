package components

import (
	stdmath "math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// RotationData drives the shared pivot frame. Speed is in degrees per second;
// clockwise rotation is a negative angle delta.
type RotationData struct {
	Speed     float64
	Clockwise bool
	Running   bool
	Angle     float64 // Current pivot orientation in degrees, [0, 360)
}

var Rotation = donburi.NewComponentType[RotationData]()

// Direction returns -1 for clockwise and 1 for counter-clockwise.
func (r *RotationData) Direction() float64 {
	if r.Clockwise {
		return -1
	}
	return 1
}

// SignedSpeed is the angular velocity including its direction.
func (r *RotationData) SignedSpeed() float64 {
	return r.Speed * r.Direction()
}

// EffectiveSpeed is the signed speed while running and zero when stopped.
func (r *RotationData) EffectiveSpeed() float64 {
	if !r.Running {
		return 0
	}
	return r.SignedSpeed()
}

// Tick advances the pivot by the signed speed over dt seconds.
func (r *RotationData) Tick(dt float64) {
	if !r.Running || r.Speed == 0 {
		return
	}
	r.Angle = stdmath.Mod(r.Angle+r.SignedSpeed()*dt, 360)
	if r.Angle < 0 {
		r.Angle += 360
	}
}

// Radians returns the pivot angle in radians.
func (r *RotationData) Radians() float64 {
	return r.Angle * stdmath.Pi / 180
}

// ToWorld maps a pivot-local point into the unrotated world frame.
func (r *RotationData) ToWorld(local math.Vec2) math.Vec2 {
	return local.Rotate(r.Radians())
}

// ToLocal maps a world point into the pivot frame.
func (r *RotationData) ToLocal(world math.Vec2) math.Vec2 {
	return world.Rotate(-r.Radians())
}

func (r *RotationData) SetSpeed(speed float64) {
	r.Speed = speed
}

func (r *RotationData) SetDirection(clockwise bool) {
	r.Clockwise = clockwise
}

func (r *RotationData) Stop() {
	r.Running = false
}

func (r *RotationData) Resume() {
	r.Running = true
}
