package systems

import (
	stdmath "math"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/gamemath"
	"github.com/automoto/starlock/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SpawnShape creates an Outside shape at a local position, adds it to the
// outer ring and registers it with the force field.
func SpawnShape(e *ecs.ECS, kind cfg.ShapeKind, color cfg.ShapeColor, pos math.Vec2) *donburi.Entry {
	entry := factory.CreateShape(e, GetSpace(e), kind, color, pos)
	shape := entry.Entity()

	GetOuterRing(e).TryAdd(shape)
	GetOrbit(e).Register(shape)
	GetSpawner(e).Track(shape)
	return entry
}

// SpawnPairs spawns n pairs. Both shapes of a pair share a random kind and
// color.
func SpawnPairs(e *ecs.ECS, n int) {
	rng := GetRandom(e)
	for i := 0; i < n; i++ {
		kind := cfg.ShapeKind(rng.Intn(int(cfg.ShapeKindCount)))
		color := cfg.ShapeColor(rng.Intn(int(cfg.ShapeColorCount)))
		SpawnShape(e, kind, color, findSpawnPosition(e))
		SpawnShape(e, kind, color, findSpawnPosition(e))
	}
}

// SpawnRandomShape spawns a single shape of random kind and color.
func SpawnRandomShape(e *ecs.ECS) *donburi.Entry {
	rng := GetRandom(e)
	kind := cfg.ShapeKind(rng.Intn(int(cfg.ShapeKindCount)))
	color := cfg.ShapeColor(rng.Intn(int(cfg.ShapeColorCount)))
	return SpawnShape(e, kind, color, findSpawnPosition(e))
}

// findSpawnPosition picks a point near the middle of the band that keeps a
// minimum distance from the ring's shapes. After MaxAttempts it settles for
// the last candidate.
func findSpawnPosition(e *ecs.ECS) math.Vec2 {
	ring := GetOuterRing(e)
	rng := GetRandom(e)
	variance := ring.Width() * cfg.Spawner.BandVariance

	var candidate math.Vec2
	for attempt := 0; attempt < cfg.Spawner.MaxAttempts; attempt++ {
		radius := ring.MidRadius() + (rng.Float64()*2-1)*variance
		candidate = gamemath.Polar(radius, rng.Float64()*2*stdmath.Pi)
		if spawnPositionFree(e, ring, candidate) {
			return candidate
		}
	}
	return candidate
}

func spawnPositionFree(e *ecs.ECS, ring *components.OuterRingData, p math.Vec2) bool {
	for _, shape := range ring.Shapes() {
		entry := shapeEntry(e, shape)
		if entry == nil {
			continue
		}
		if components.Body.Get(entry).Position.Distance(p) < cfg.Spawner.MinDistance {
			return false
		}
	}
	return true
}

// SpawnerActiveCount returns the spawned shapes that are still on their way
// to the container: live and either Outside or MovingInside.
func SpawnerActiveCount(e *ecs.ECS) int {
	spawner := GetSpawner(e)
	spawner.Purge(alive(e))

	count := 0
	for _, shape := range spawner.Spawned() {
		entry := shapeEntry(e, shape)
		if entry == nil {
			continue
		}
		switch components.Shape.Get(entry).State {
		case cfg.Outside, cfg.MovingInside:
			count++
		}
	}
	return count
}

// SpawnerLiveCount returns the spawned shapes that are alive and not yet
// matched, wherever they are.
func SpawnerLiveCount(e *ecs.ECS) int {
	spawner := GetSpawner(e)
	spawner.Purge(alive(e))

	count := 0
	for _, shape := range spawner.Spawned() {
		entry := shapeEntry(e, shape)
		if entry != nil && components.Shape.Get(entry).State != cfg.Matched {
			count++
		}
	}
	return count
}
