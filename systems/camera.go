package systems

import (
	"math"

	"github.com/automoto/starlock/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera applies the screen shake to the camera offset.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.ShakeOffset = dmath.Vec2{}
	updateScreenShake(cameraEntry, camera, GetClock(e).Delta)
}

// updateScreenShake applies screen shake offset to camera and advances its
// elapsed time
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData, dt float64) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt

	// Calculate decaying intensity
	progress := (shake.Duration - shake.Elapsed) / shake.Duration
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Oscillate at roughly the per-frame rate of a 60 TPS loop
	phase := shake.Elapsed * 60
	camera.ShakeOffset.X = math.Sin(phase*1.1) * currentIntensity
	camera.ShakeOffset.Y = math.Cos(phase*1.3) * currentIntensity

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		camera.ShakeOffset = dmath.Vec2{}
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok || duration <= 0 {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
