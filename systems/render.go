package systems

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/fonts"
	"github.com/automoto/starlock/gamemath"
	"github.com/automoto/starlock/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	whiteSubImage *ebiten.Image

	// Reused vertex buffers for polygon fills
	polyVertices []ebiten.Vertex
	polyIndices  []uint16
)

// fillSource lazily builds the solid white source for triangle fills.
func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// DrawArena renders the container and the outer ring band in the rotating
// frame. The container turns red when full.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	camera := GetCamera(e)
	if camera == nil {
		return
	}
	rotation := GetRotation(e)
	container := GetContainer(e)
	ring := GetOuterRing(e)

	drawPolyline(screen, camera, ring.OuterBoundary, rotation, cfg.HUD.RingColor)
	drawPolyline(screen, camera, ring.InnerBoundary, rotation, cfg.HUD.RingColor)

	containerColor := cfg.HUD.ContainerColor
	if container.IsFull() {
		containerColor = cfg.HUD.FullColor
	}
	drawPolyline(screen, camera, container.Boundary, rotation, containerColor)
}

func drawPolyline(screen *ebiten.Image, camera *components.CameraData, points []dmath.Vec2, rotation *components.RotationData, clr color.Color) {
	for i := 1; i < len(points); i++ {
		x0, y0 := camera.WorldToScreen(rotation.ToWorld(points[i-1]))
		x1, y1 := camera.WorldToScreen(rotation.ToWorld(points[i]))
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, clr, true)
	}
}

// DrawShapes renders every shape as a filled polygon of its kind.
func DrawShapes(e *ecs.ECS, screen *ebiten.Image) {
	camera := GetCamera(e)
	if camera == nil {
		return
	}
	rotation := GetRotation(e)

	tags.Shape.Each(e.World, func(entry *donburi.Entry) {
		shape := components.Shape.Get(entry)
		if shape.Scale <= 0 {
			return
		}
		body := components.Body.Get(entry)
		cx, cy := camera.WorldToScreen(rotation.ToWorld(body.Position))
		radius := body.Radius * camera.PixelsPerUnit * shape.Scale
		clr := shape.Color.RGBA()

		if shape.Kind == cfg.Circle {
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), clr, true)
			return
		}
		drawPolygon(screen, cx, cy, radius, shape.Kind, -(rotation.Angle+shape.Spin)*math.Pi/180, clr)
	})
}

// polygonSides returns the corner count and starting offset for a kind.
func polygonSides(kind cfg.ShapeKind) (int, float64) {
	switch kind {
	case cfg.Square:
		return 4, math.Pi / 4
	case cfg.Triangle:
		return 3, -math.Pi / 2
	case cfg.Diamond:
		return 4, 0
	case cfg.Hexagon:
		return 6, 0
	}
	return 0, 0
}

func drawPolygon(screen *ebiten.Image, cx, cy, radius float64, kind cfg.ShapeKind, rotation float64, clr color.RGBA) {
	sides, offset := polygonSides(kind)
	if sides < 3 {
		return
	}

	var path vector.Path
	for i := 0; i < sides; i++ {
		a := offset + rotation + float64(i)*2*math.Pi/float64(sides)
		x := float32(cx + math.Cos(a)*radius)
		y := float32(cy + math.Sin(a)*radius)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	polyVertices, polyIndices = path.AppendVerticesAndIndicesForFilling(polyVertices[:0], polyIndices[:0])
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range polyVertices {
		polyVertices[i].SrcX = 1
		polyVertices[i].SrcY = 1
		polyVertices[i].ColorR = r
		polyVertices[i].ColorG = g
		polyVertices[i].ColorB = b
		polyVertices[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(polyVertices, polyIndices, fillSource(), op)
}

// DrawScorePopups renders the rising "+points" labels.
func DrawScorePopups(e *ecs.ECS, screen *ebiten.Image) {
	camera := GetCamera(e)
	if camera == nil {
		return
	}
	face := fonts.Bold.Get()

	tags.ScorePopup.Each(e.World, func(entry *donburi.Entry) {
		popup := components.ScorePopup.Get(entry)
		t := 0.0
		if popup.Lifetime > 0 {
			t = gamemath.ClampFloat(popup.Age/popup.Lifetime, 0, 1)
		}
		x, y := camera.WorldToScreen(popup.Position)
		y -= cfg.HUD.ScorePopupRise * t

		clr := popup.Color
		clr.A = uint8(255 * (1 - t))
		label := fmt.Sprintf("+%d", popup.Points)
		width := text.BoundString(face, label).Dx()
		text.Draw(screen, label, face, int(x)-width/2, int(y), clr)
	})
}
