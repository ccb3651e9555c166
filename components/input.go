package components

import (
	cfg "github.com/automoto/starlock/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputPointer
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// TapEvent is one pointer press in screen coordinates.
type TapEvent struct {
	Screen math.Vec2
	OverUI bool // The pointer was over interactive UI when pressed
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the pointer presses of this frame.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	Taps            []TapEvent
	LastInputMethod InputMethod

	// OverUI reports whether a screen point is covered by interactive UI.
	// Nil means no UI is shown.
	OverUI func(x, y int) bool
}

var Input = donburi.NewComponentType[InputData]()

// QueueTap records a pointer press for this frame.
func (i *InputData) QueueTap(x, y float64, overUI bool) {
	i.Taps = append(i.Taps, TapEvent{Screen: math.Vec2{X: x, Y: y}, OverUI: overUI})
}

// DrainTaps returns and clears the queued taps.
func (i *InputData) DrainTaps() []TapEvent {
	taps := i.Taps
	i.Taps = nil
	return taps
}
