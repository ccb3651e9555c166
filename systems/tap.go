package systems

import (
	stdmath "math"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/gamemath"
	"github.com/automoto/starlock/notify"
	"github.com/automoto/starlock/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateTapRouter routes every tap queued by UpdateInput this frame.
func UpdateTapRouter(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	for _, tap := range input.DrainTaps() {
		HandleTap(e, tap.Screen, tap.OverUI)
	}
}

// HandleTap converts a screen tap into the pivot's local frame and routes
// it. It reports whether a shape was sent into the container.
func HandleTap(e *ecs.ECS, screen math.Vec2, overUI bool) bool {
	router := GetTapRouter(e)
	if !router.Enabled || overUI {
		return false
	}
	camera := GetCamera(e)
	if camera == nil {
		log.Warn("tap ignored, no camera configured")
		return false
	}
	world := camera.ScreenToWorld(screen.X, screen.Y)
	local := GetRotation(e).ToLocal(world)
	return HandleLocalTap(e, local)
}

// HandleLocalTap selects the closest Outside shape within the tap radius of
// a local point and launches it into the container.
func HandleLocalTap(e *ecs.ECS, local math.Vec2) bool {
	router := GetTapRouter(e)
	if !router.Enabled {
		return false
	}

	entry := closestOutsideShape(e, local, router.Radius)
	if entry == nil {
		return false
	}

	container := GetContainer(e)
	shape := entry.Entity()
	if !container.CanAccept() || !container.Reserve(shape) {
		log.Debug("tap refused, container cannot accept", "count", container.Count(), "reserved", container.Reserved())
		return false
	}

	GetOrbit(e).Unregister(shape)
	GetOuterRing(e).Remove(shape)
	notify.ShapeTapped.Publish(e.World, notify.ShapeTappedEvent{
		Shape:    shape,
		Position: components.Body.Get(entry).Position,
	})

	rng := GetRandom(e)
	target := container.RandomInteriorPoint(rng.Rand)
	ok := MoveInside(e, entry, target, func() {
		landInContainer(e, shape)
	})
	if !ok {
		container.Release(shape)
	}
	return ok
}

// landInContainer runs when a shape finishes its flight. The shape may have
// been destroyed in the meantime.
func landInContainer(e *ecs.ECS, shape donburi.Entity) {
	entry := shapeEntry(e, shape)
	if entry == nil {
		return
	}
	container := GetContainer(e)
	if !container.TryAdd(shape) {
		container.Release(shape)
		return
	}

	rng := GetRandom(e)
	magnitude := cfg.Tap.ImpulseMin + rng.Float64()*(cfg.Tap.ImpulseMax-cfg.Tap.ImpulseMin)
	angle := rng.Float64() * 2 * stdmath.Pi
	components.Body.Get(entry).AddImpulse(gamemath.Polar(magnitude, angle))
}

// closestOutsideShape queries the collision space around p and returns the
// nearest Outside shape whose center lies within radius.
func closestOutsideShape(e *ecs.ECS, p math.Vec2, radius float64) *donburi.Entry {
	space := GetSpace(e)
	x, y := space.ToSpace(math.Vec2{X: p.X - radius, Y: p.Y - radius})
	size := 2 * radius * space.Scale
	query := resolv.NewObject(x, y, size, size, tags.ResolvTapQuery)
	space.Add(query)
	check := query.Check(0, 0, tags.ResolvShape)
	space.Remove(query)
	if check == nil {
		return nil
	}

	var best *donburi.Entry
	bestDist := stdmath.Inf(1)
	for _, obj := range check.Objects {
		shape, ok := obj.Data.(donburi.Entity)
		if !ok {
			continue
		}
		entry := shapeEntry(e, shape)
		if entry == nil || components.Shape.Get(entry).State != cfg.Outside {
			continue
		}
		dist := components.Body.Get(entry).Position.Distance(p)
		if dist <= radius && dist < bestDist {
			best, bestDist = entry, dist
		}
	}
	return best
}
