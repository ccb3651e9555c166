package systems

import (
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePause and UpdateTapRouter in the system order.
func UpdateInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	pointerUsed := pollPointer(input)

	switch {
	case pointerUsed:
		input.LastInputMethod = components.InputPointer
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollPointer queues a tap for every mouse click and touch that started this
// frame.
func pollPointer(input *components.InputData) bool {
	used := false
	if inpututil.IsMouseButtonJustPressed(cfg.Input.TapMouseButton) {
		x, y := ebiten.CursorPosition()
		input.QueueTap(float64(x), float64(y), pointerOverUI(input, x, y))
		used = true
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		input.QueueTap(float64(x), float64(y), pointerOverUI(input, x, y))
		used = true
	}
	return used
}

func pointerOverUI(input *components.InputData, x, y int) bool {
	if input.OverUI == nil {
		return false
	}
	return input.OverUI(x, y)
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// AnyActionPressed reports whether any bound action is held this frame.
func AnyActionPressed(input *components.InputData) bool {
	for _, pressed := range input.Current {
		if pressed {
			return true
		}
	}
	return false
}
