package systems

import (
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/gamemath"
	"github.com/automoto/starlock/notify"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// TransitionRequest carries the arguments of a MovingInside transition.
type TransitionRequest struct {
	Target     math.Vec2 // Local position the shape flies to
	OnComplete func()    // Runs after the shape has become Inside
}

// InitializeShape sets a shape's identity, resets it to Outside and makes its
// body dynamic.
func InitializeShape(e *ecs.ECS, entry *donburi.Entry, kind cfg.ShapeKind, color cfg.ShapeColor) {
	components.Shape.Get(entry).Initialize(kind, color)
	components.Transition.Get(entry).Reset()
	body := components.Body.Get(entry)
	body.LinearDrag = cfg.Shape.LinearDrag
	body.Wake()
	setCollider(e, entry, true)
}

// RequestTransitionTo moves a shape forward in its lifecycle and applies the
// side effects of the new state. It returns false, changing nothing, when
// the request is a no-op or not allowed.
func RequestTransitionTo(e *ecs.ECS, entry *donburi.Entry, next cfg.LifecycleState, req TransitionRequest) bool {
	if entry == nil || !entry.Valid() {
		return false
	}
	shape := components.Shape.Get(entry)
	current := shape.State
	if next == current || next < current {
		return false
	}
	if next == cfg.MovingInside && current != cfg.Outside {
		return false
	}

	shape.State = next
	body := components.Body.Get(entry)
	transition := components.Transition.Get(entry)

	switch next {
	case cfg.MovingInside:
		body.Freeze()
		setCollider(e, entry, false)
		*transition = components.TransitionData{
			Kind:       components.TransitionMoveInside,
			From:       body.Position,
			To:         req.Target,
			Move:       gween.New(0, 1, float32(cfg.Shape.MoveInsideDuration), ease.InOutQuad),
			OnComplete: req.OnComplete,
		}
	case cfg.Inside:
		body.Wake()
		setCollider(e, entry, true)
	case cfg.Matched:
		body.Freeze()
		setCollider(e, entry, false)
		half := float32(cfg.Shape.MatchedScaleDuration / 2)
		peak := float32(cfg.Shape.MatchedScalePeak)
		*transition = components.TransitionData{
			Kind: components.TransitionScaleOut,
			Scale: gween.NewSequence(
				gween.New(1, peak, half, ease.OutQuad),
				gween.New(peak, 0, half, ease.InQuad),
			),
		}
	}
	return true
}

// MoveInside starts the Outside->MovingInside flight toward target.
func MoveInside(e *ecs.ECS, entry *donburi.Entry, target math.Vec2, onComplete func()) bool {
	return RequestTransitionTo(e, entry, cfg.MovingInside, TransitionRequest{
		Target:     target,
		OnComplete: onComplete,
	})
}

// UpdateTransitions advances every running shape animation and fires the
// continuations of those that finish.
func UpdateTransitions(e *ecs.ECS) {
	dt := float32(GetClock(e).Delta)

	var running []donburi.Entity
	components.Transition.Each(e.World, func(entry *donburi.Entry) {
		if components.Transition.Get(entry).Active() {
			running = append(running, entry.Entity())
		}
	})

	for _, shape := range running {
		entry := shapeEntry(e, shape)
		if entry == nil {
			continue
		}
		transition := components.Transition.Get(entry)
		switch transition.Kind {
		case components.TransitionMoveInside:
			advanceMoveInside(e, entry, transition, dt)
		case components.TransitionScaleOut:
			advanceScaleOut(e, entry, transition, dt)
		}
	}
}

func advanceMoveInside(e *ecs.ECS, entry *donburi.Entry, transition *components.TransitionData, dt float32) {
	progress, done := transition.Move.Update(dt)
	body := components.Body.Get(entry)
	if !done {
		body.Position = gamemath.Lerp(transition.From, transition.To, float64(progress))
		return
	}

	body.Position = transition.To
	onComplete := transition.OnComplete
	transition.Reset()

	shape := entry.Entity()
	RequestTransitionTo(e, entry, cfg.Inside, TransitionRequest{})
	notify.ShapeEntered.Publish(e.World, notify.ShapeEnteredEvent{Shape: shape})
	if onComplete != nil {
		onComplete()
	}
}

func advanceScaleOut(e *ecs.ECS, entry *donburi.Entry, transition *components.TransitionData, dt float32) {
	scale, _, done := transition.Scale.Update(dt)
	shape := components.Shape.Get(entry)
	shape.Scale = float64(scale)
	if !done {
		return
	}
	shape.Scale = 0
	transition.Reset()

	entity := entry.Entity()
	notify.ShapeMatched.Publish(e.World, notify.ShapeMatchedEvent{Shape: entity})
	DestroyShape(e, entity)
}

// DestroyShape removes a shape from every zone and from the world. Stale
// references are ignored.
func DestroyShape(e *ecs.ECS, shape donburi.Entity) {
	entry := shapeEntry(e, shape)
	if entry == nil {
		return
	}
	setCollider(e, entry, false)

	GetOrbit(e).Unregister(shape)
	GetOuterRing(e).Remove(shape)
	container := GetContainer(e)
	container.Release(shape)
	container.Remove(shape)
	GetMatch(e).Untrack(shape)

	e.World.Remove(shape)
}
