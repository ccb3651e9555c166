package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransitionKind identifies the animation a shape is playing.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionMoveInside
	TransitionScaleOut
)

// TransitionData is the per-shape animation state. Move drives eased
// progress from From to To; Scale drives the scale-out sequence.
type TransitionData struct {
	Kind       TransitionKind
	From, To   math.Vec2
	Move       *gween.Tween
	Scale      *gween.Sequence
	OnComplete func()
}

var Transition = donburi.NewComponentType[TransitionData]()

// Active reports whether an animation is running.
func (t *TransitionData) Active() bool {
	return t.Kind != TransitionNone
}

// Reset stops any animation without running its continuation.
func (t *TransitionData) Reset() {
	*t = TransitionData{}
}
