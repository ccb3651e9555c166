package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/fonts"
	"github.com/automoto/starlock/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// velocityLookahead is how far ahead, in seconds, velocity lines reach.
const velocityLookahead = 0.25

// UpdateDebug toggles the collider overlay.
func UpdateDebug(e *ecs.ECS) {
	if GetAction(GetOrCreateInput(e), cfg.ActionDebug).JustPressed {
		cfg.Debug.Colliders = !cfg.Debug.Colliders
	}
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Colliders {
		return
	}
	camera := GetCamera(e)
	if camera == nil {
		return // No camera yet
	}
	space := GetSpace(e)
	rotation := GetRotation(e)

	toScreen := func(local math.Vec2) (float32, float32) {
		x, y := camera.WorldToScreen(rotation.ToWorld(local))
		return float32(x), float32(y)
	}

	// Draw all collision objects in the space
	for _, obj := range space.Objects() {
		center := space.FromSpace(obj.X+obj.W/2, obj.Y+obj.H/2)
		x, y := toScreen(center)
		half := float32(obj.W / space.Scale * camera.PixelsPerUnit / 2)

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvTapQuery) {
			c = color.RGBA{255, 0, 255, 255}
		}
		vector.StrokeRect(screen, x-half, y-half, 2*half, 2*half, 1, c, false)
	}

	// Velocity of every dynamic shape
	tags.Shape.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if !body.Dynamic {
			return
		}
		x0, y0 := toScreen(body.Position)
		x1, y1 := toScreen(body.Position.Add(body.Velocity.MulScalar(velocityLookahead)))
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, color.RGBA{0, 255, 0, 255}, false)
	})

	container := GetContainer(e)
	stats := fmt.Sprintf("TPS %.0f  colliders %d  inside %d  reserved %d  tracked %d  angle %.0f",
		ebiten.ActualTPS(), len(space.Objects()), container.Count(), container.Reserved(),
		GetMatch(e).TrackedCount(), rotation.Angle)
	text.Draw(screen, stats, fonts.Small.Get(), int(cfg.HUD.Margin), screen.Bounds().Dy()-int(cfg.HUD.Margin)-14, cfg.HUD.TextColor)
}
