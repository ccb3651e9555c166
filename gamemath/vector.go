// Package gamemath holds the vector helpers donburi's math.Vec2 lacks.
package gamemath

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// ClampMagnitude limits the length of v to max, keeping its direction.
func ClampMagnitude(v math.Vec2, max float64) math.Vec2 {
	l := v.Magnitude()
	if l <= max || l == 0 {
		return v
	}
	return v.MulScalar(max / l)
}

// Lerp interpolates between a and b by t.
func Lerp(a, b math.Vec2, t float64) math.Vec2 {
	return math.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Polar returns the point at radius r and angle rad.
func Polar(r, rad float64) math.Vec2 {
	sin, cos := stdmath.Sincos(rad)
	return math.Vec2{X: r * cos, Y: r * sin}
}

// CirclePolyline returns a closed polyline of segments+1 points approximating
// a circle of the given radius. The last point repeats the first.
func CirclePolyline(radius float64, segments int) []math.Vec2 {
	if segments < 3 {
		segments = 3
	}
	points := make([]math.Vec2, segments+1)
	step := 2 * stdmath.Pi / float64(segments)
	for i := 0; i <= segments; i++ {
		points[i] = Polar(radius, float64(i)*step)
	}
	return points
}

// ClampFloat clamps a value to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
