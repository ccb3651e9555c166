package systems

import (
	"github.com/automoto/starlock/archetypes"
	"github.com/automoto/starlock/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateBot adds an auto-tapper that taps every interval seconds.
func CreateBot(e *ecs.ECS, interval float64) *donburi.Entry {
	entry := archetypes.Bot.Spawn(e)
	components.Bot.Set(entry, &components.BotData{Interval: interval})
	return entry
}

// UpdateBots taps a shape for every bot whose timer has elapsed. Bots prefer
// shapes whose partner is already in the container.
func UpdateBots(e *ecs.ECS) {
	if GetRound(e).IsTerminal() {
		return
	}
	dt := GetClock(e).Delta

	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		bot := components.Bot.Get(entry)
		bot.Timer += dt
		if bot.Timer < bot.Interval {
			return
		}
		bot.Timer = 0

		target, ok := chooseBotTarget(e)
		if !ok {
			return
		}
		if tapLocal(e, target) {
			bot.Taps++
		} else {
			bot.Misses++
		}
	})
}

// tapLocal taps a local position, going through the camera when the scene
// has one.
func tapLocal(e *ecs.ECS, local math.Vec2) bool {
	camera := GetCamera(e)
	if camera == nil {
		return HandleLocalTap(e, local)
	}
	world := GetRotation(e).ToWorld(local)
	x, y := camera.WorldToScreen(world)
	// Shake is cosmetic and must not move the tap
	x -= camera.ShakeOffset.X
	y -= camera.ShakeOffset.Y
	return HandleTap(e, math.Vec2{X: x, Y: y}, false)
}

func chooseBotTarget(e *ecs.ECS) (math.Vec2, bool) {
	container := GetContainer(e)
	inside := map[[2]int]bool{}
	for _, shape := range container.Shapes() {
		if entry := shapeEntry(e, shape); entry != nil {
			s := components.Shape.Get(entry)
			inside[[2]int{int(s.Kind), int(s.Color)}] = true
		}
	}

	var fallback math.Vec2
	haveFallback := false
	for _, shape := range GetOuterRing(e).Shapes() {
		entry := shapeEntry(e, shape)
		if entry == nil {
			continue
		}
		s := components.Shape.Get(entry)
		pos := components.Body.Get(entry).Position
		if inside[[2]int{int(s.Kind), int(s.Color)}] {
			return pos, true
		}
		if !haveFallback {
			fallback, haveFallback = pos, true
		}
	}

	if !haveFallback || !container.CanAccept() {
		return math.Vec2{}, false
	}
	return fallback, true
}
