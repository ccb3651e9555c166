package components

import (
	stdmath "math"
	"math/rand"

	"github.com/automoto/starlock/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// OuterRingData is the rotating band of shapes waiting to be tapped.
type OuterRingData struct {
	InnerRadius   float64
	OuterRadius   float64
	Segments      int
	InnerBoundary []math.Vec2
	OuterBoundary []math.Vec2

	shapes EntitySet

	Events *ZoneEvents
}

var OuterRing = donburi.NewComponentType[OuterRingData]()

// NewOuterRing builds a ring with its boundary geometry.
func NewOuterRing(inner, outer float64, segments int) OuterRingData {
	r := OuterRingData{
		Segments: segments,
		Events:   &ZoneEvents{},
	}
	r.SetRadii(inner, outer)
	return r
}

// Count returns the number of shapes in the ring.
func (r *OuterRingData) Count() int {
	return r.shapes.Len()
}

// Contains reports whether e is in the ring.
func (r *OuterRingData) Contains(e donburi.Entity) bool {
	return r.shapes.Contains(e)
}

// Shapes returns the ring's shapes in insertion order.
func (r *OuterRingData) Shapes() []donburi.Entity {
	return r.shapes.Snapshot()
}

// TryAdd inserts e. It is a no-op when e is already in the ring.
func (r *OuterRingData) TryAdd(e donburi.Entity) bool {
	if !r.shapes.Add(e) {
		return false
	}
	r.Events.Added.Emit(e)
	r.Events.CountChanged.Emit(r.shapes.Len())
	return true
}

// Remove deletes e. The empty notification fires only when the ring goes
// from one shape to none.
func (r *OuterRingData) Remove(e donburi.Entity) bool {
	if !r.shapes.Remove(e) {
		return false
	}
	count := r.shapes.Len()
	r.Events.Removed.Emit(e)
	r.Events.CountChanged.Emit(count)
	if count == 0 {
		r.Events.BecameEmpty.Emit(struct{}{})
	}
	return true
}

// Clear drops every shape without firing the empty notification.
func (r *OuterRingData) Clear() {
	hadShapes := r.shapes.Len() > 0
	r.shapes.Clear()
	if hadShapes {
		r.Events.CountChanged.Emit(0)
	}
}

// Purge drops references to shapes that no longer exist.
func (r *OuterRingData) Purge(alive func(donburi.Entity) bool) {
	if r.shapes.Purge(alive) > 0 {
		r.Events.CountChanged.Emit(r.shapes.Len())
	}
}

// MidRadius returns the radius halfway across the band.
func (r *OuterRingData) MidRadius() float64 {
	return (r.InnerRadius + r.OuterRadius) / 2
}

// Width returns the radial width of the band.
func (r *OuterRingData) Width() float64 {
	return r.OuterRadius - r.InnerRadius
}

// RandomPointInBand samples a uniform radius between the band edges and a
// uniform angle.
func (r *OuterRingData) RandomPointInBand(rng *rand.Rand) math.Vec2 {
	radius := r.InnerRadius + rng.Float64()*(r.OuterRadius-r.InnerRadius)
	angle := rng.Float64() * 2 * stdmath.Pi
	return gamemath.Polar(radius, angle)
}

// SetRadii changes the band edges and regenerates the boundary polylines.
func (r *OuterRingData) SetRadii(inner, outer float64) {
	if outer < inner {
		inner, outer = outer, inner
	}
	r.InnerRadius = inner
	r.OuterRadius = outer
	r.InnerBoundary = gamemath.CirclePolyline(inner, r.Segments)
	r.OuterBoundary = gamemath.CirclePolyline(outer, r.Segments)
}
