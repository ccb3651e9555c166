package systems

import (
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/gamemath"
	"github.com/automoto/starlock/notify"
	"github.com/automoto/starlock/signal"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WireMatchEngine subscribes the match engine to container membership. The
// subscriptions are owned by scope.
func WireMatchEngine(e *ecs.ECS, scope *signal.Scope) {
	container := GetContainer(e)
	scope.Add(container.Events.Added.Subscribe(func(shape donburi.Entity) {
		onShapeContained(e, shape)
	}))
	scope.Add(container.Events.Removed.Subscribe(func(shape donburi.Entity) {
		GetMatch(e).Untrack(shape)
	}))
}

func onShapeContained(e *ecs.ECS, shape donburi.Entity) {
	entry := shapeEntry(e, shape)
	if entry == nil || components.Shape.Get(entry).State != cfg.Inside {
		return
	}
	match := GetMatch(e)
	if match.Track(shape) {
		ScheduleMatchCheck(e, match.CheckDelay)
	}
}

// ScheduleMatchCheck runs a match check after delay seconds. Requests made
// while a check is already pending are folded into it.
func ScheduleMatchCheck(e *ecs.ECS, delay float64) {
	match := GetMatch(e)
	if match.CheckPending() {
		return
	}
	id := Schedule(e, delay, func() {
		GetMatch(e).SetPendingCheck(0)
		RunMatchCheck(e)
	})
	match.SetPendingCheck(id)
}

// ResetMatchEngine cancels a pending check, forgets the tracked shapes and
// zeroes the score.
func ResetMatchEngine(e *ecs.ECS) {
	match := GetMatch(e)
	if match.CheckPending() {
		CancelScheduled(e, match.PendingCheck())
		match.SetPendingCheck(0)
	}
	match.Clear()
	match.ResetScore()
}

// RunMatchCheck processes the first matching pair among the tracked shapes,
// if any, and schedules a follow-up check. It reports whether a pair
// matched.
func RunMatchCheck(e *ecs.ECS) bool {
	match := GetMatch(e)
	match.Purge(isInside(e))

	first, second, ok := findFirstMatch(e, match.Tracked())
	if !ok {
		return false
	}
	processMatch(e, first, second)
	ScheduleMatchCheck(e, 2*GetMatch(e).CheckDelay)
	return true
}

// findFirstMatch scans unordered pairs in insertion order and returns the
// first pair (i, j), i < j, that matches.
func findFirstMatch(e *ecs.ECS, shapes []donburi.Entity) (*donburi.Entry, *donburi.Entry, bool) {
	for i := 0; i < len(shapes); i++ {
		a := shapeEntry(e, shapes[i])
		if a == nil {
			continue
		}
		shapeA := components.Shape.Get(a)
		for j := i + 1; j < len(shapes); j++ {
			b := shapeEntry(e, shapes[j])
			if b == nil {
				continue
			}
			if shapeA.MatchesWith(components.Shape.Get(b)) {
				return a, b, true
			}
		}
	}
	return nil, nil, false
}

func processMatch(e *ecs.ECS, first, second *donburi.Entry) {
	match := GetMatch(e)
	container := GetContainer(e)
	a, b := first.Entity(), second.Entity()

	midpoint := gamemath.Lerp(components.Body.Get(first).Position, components.Body.Get(second).Position, 0.5)
	color := components.Shape.Get(first).Color

	match.Untrack(a)
	match.Untrack(b)
	container.Remove(a)
	container.Remove(b)

	points := match.PointsPerMatch
	score := match.AddPoints(points)
	log.Debug("match found", "kind", components.Shape.Get(first).Kind, "color", color, "score", score)

	match.Events.ScoreChanged.Emit(score)
	notify.ScoreChanged.Publish(e.World, notify.ScoreChangedEvent{Score: score})

	match.Events.MatchFound.Emit(components.MatchFound{First: a, Second: b, Points: points})
	notify.MatchFound.Publish(e.World, notify.MatchFoundEvent{
		First:    a,
		Second:   b,
		Points:   points,
		Midpoint: midpoint,
		Color:    color,
	})

	// Subscribers may have destroyed either shape
	for _, shape := range []donburi.Entity{a, b} {
		if entry := shapeEntry(e, shape); entry != nil {
			RequestTransitionTo(e, entry, cfg.Matched, TransitionRequest{})
		}
	}
}

// GetContainedCount returns the number of tracked, unmatched inside shapes
// after dropping stale references.
func GetContainedCount(e *ecs.ECS) int {
	match := GetMatch(e)
	match.Purge(isInside(e))
	return match.TrackedCount()
}

func isInside(e *ecs.ECS) func(donburi.Entity) bool {
	return func(shape donburi.Entity) bool {
		entry := shapeEntry(e, shape)
		return entry != nil && components.Shape.Get(entry).State == cfg.Inside
	}
}
