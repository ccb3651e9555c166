package components

import (
	stdmath "math"
	"math/rand"

	"github.com/automoto/starlock/gamemath"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ContainerData is the central containment zone. Shapes in flight toward it
// hold a reservation so that the capacity can never be exceeded.
type ContainerData struct {
	Radius   float64
	Capacity int
	Segments int
	Spread   float64 // Fraction of Radius used for interior placement
	Boundary []math.Vec2

	shapes      EntitySet
	reserved    EntitySet
	fullLatched bool

	Events *ZoneEvents
}

var Container = donburi.NewComponentType[ContainerData]()

// NewContainer builds a container with its boundary geometry.
func NewContainer(radius float64, capacity, segments int, spread float64) ContainerData {
	c := ContainerData{
		Capacity: capacity,
		Segments: segments,
		Spread:   spread,
		Events:   &ZoneEvents{},
	}
	c.SetRadius(radius)
	return c
}

// Count returns the number of contained shapes.
func (c *ContainerData) Count() int {
	return c.shapes.Len()
}

// Reserved returns the number of shapes in flight toward the container.
func (c *ContainerData) Reserved() int {
	return c.reserved.Len()
}

// Contains reports whether e is inside the container.
func (c *ContainerData) Contains(e donburi.Entity) bool {
	return c.shapes.Contains(e)
}

// Shapes returns the contained shapes in insertion order.
func (c *ContainerData) Shapes() []donburi.Entity {
	return c.shapes.Snapshot()
}

// IsFull reports whether the contained count has reached capacity. After a
// shrink the count may sit above capacity, which still reads as full.
func (c *ContainerData) IsFull() bool {
	return c.shapes.Len() >= c.Capacity
}

// CanAccept reports whether one more shape may be sent in. Shapes already in
// flight count against the capacity.
func (c *ContainerData) CanAccept() bool {
	return c.shapes.Len()+c.reserved.Len() < c.Capacity
}

// Reserve claims a slot for a shape that is about to fly in.
func (c *ContainerData) Reserve(e donburi.Entity) bool {
	if c.shapes.Contains(e) || c.reserved.Contains(e) {
		return false
	}
	if !c.CanAccept() {
		return false
	}
	return c.reserved.Add(e)
}

// Release gives back a reservation that will not be used.
func (c *ContainerData) Release(e donburi.Entity) {
	c.reserved.Remove(e)
}

// TryAdd inserts e. It is a no-op when e is already inside or the container
// is full. The full notification fires once per fill.
func (c *ContainerData) TryAdd(e donburi.Entity) bool {
	if c.shapes.Contains(e) {
		return false
	}
	if c.shapes.Len() >= c.Capacity {
		c.reserved.Remove(e)
		return false
	}
	c.reserved.Remove(e)
	c.shapes.Add(e)

	count := c.shapes.Len()
	c.Events.Added.Emit(e)
	c.Events.CountChanged.Emit(count)
	if count == c.Capacity && !c.fullLatched {
		c.fullLatched = true
		c.Events.BecameFull.Emit(count)
	}
	return true
}

// Remove deletes e. It is a no-op when e is not inside.
func (c *ContainerData) Remove(e donburi.Entity) bool {
	if !c.shapes.Remove(e) {
		return false
	}
	count := c.shapes.Len()
	if count < c.Capacity {
		c.fullLatched = false
	}
	c.Events.Removed.Emit(e)
	c.Events.CountChanged.Emit(count)
	return true
}

// Clear drops every contained shape and reservation.
func (c *ContainerData) Clear() {
	hadShapes := c.shapes.Len() > 0
	c.shapes.Clear()
	c.reserved.Clear()
	c.fullLatched = false
	if hadShapes {
		c.Events.CountChanged.Emit(0)
	}
}

// Purge drops references to shapes that no longer exist.
func (c *ContainerData) Purge(alive func(donburi.Entity) bool) {
	c.reserved.Purge(alive)
	if c.shapes.Purge(alive) > 0 {
		if c.shapes.Len() < c.Capacity {
			c.fullLatched = false
		}
		c.Events.CountChanged.Emit(c.shapes.Len())
	}
}

// RandomInteriorPoint samples a point inside the placement disc using a
// uniform radius and a uniform angle.
func (c *ContainerData) RandomInteriorPoint(rng *rand.Rand) math.Vec2 {
	r := rng.Float64() * c.Radius * c.Spread
	angle := rng.Float64() * 2 * stdmath.Pi
	return gamemath.Polar(r, angle)
}

// SetCapacity changes the capacity. Values below one are raised to one.
// Shrinking below the current count keeps the extra shapes; the new limit
// applies to later adds, which are refused until the count drops below it.
// A shrink does not emit BecameFull.
func (c *ContainerData) SetCapacity(n int) {
	if n < 1 {
		log.Warn("container capacity must be positive, using 1", "capacity", n)
		n = 1
	}
	c.Capacity = n
	if c.shapes.Len() < n {
		c.fullLatched = false
	}
}

// SetRadius changes the radius and regenerates the boundary polyline.
func (c *ContainerData) SetRadius(r float64) {
	c.Radius = r
	c.Boundary = gamemath.CirclePolyline(r, c.Segments)
}
