package systems

import (
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	if GetAction(input, cfg.ActionPause).JustPressed {
		TogglePause(e)
	}
}

// TogglePause flips the pause state. Tap input is disabled while paused and
// comes back on resume unless the round has ended.
func TogglePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	SetPaused(e, !pause.IsPaused)
}

// SetPaused sets the pause state.
func SetPaused(e *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(e)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused

	router := GetTapRouter(e)
	if paused {
		router.SetInputEnabled(false)
		return
	}
	router.SetInputEnabled(!GetRound(e).IsTerminal())
	// Taps queued while paused are dropped
	GetOrCreateInput(e).DrainTaps()
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.HUD.OverlayColor, false)

	title := "PAUSED"
	titleFace := fonts.Title.Get()
	titleWidth := text.BoundString(titleFace, title).Dx()
	text.Draw(screen, title, titleFace, int(width)/2-titleWidth/2, int(height)/2, cfg.HUD.AccentColor)

	hint := getPauseHint(GetOrCreateInput(e).LastInputMethod)
	hintFace := fonts.Small.Get()
	hintWidth := text.BoundString(hintFace, hint).Dx()
	text.Draw(screen, hint, hintFace, int(width)/2-hintWidth/2, int(height)-12, cfg.HUD.TextColor)
}

// getPauseHint returns the appropriate hint for the pause overlay
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputGamepad:
		return "Start: Resume"
	case components.InputPointer:
		return "Tap the pause button to resume"
	}
	return "Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
