package gamemath

import (
	stdmath "math"
	"testing"

	"github.com/yohamta/donburi/features/math"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return stdmath.Abs(a-b) < epsilon
}

func TestClampMagnitude(t *testing.T) {
	tests := []struct {
		name     string
		input    math.Vec2
		max      float64
		expected math.Vec2
	}{
		{"under limit unchanged", math.Vec2{X: 3, Y: 4}, 10, math.Vec2{X: 3, Y: 4}},
		{"over limit scaled", math.Vec2{X: 30, Y: 40}, 10, math.Vec2{X: 6, Y: 8}},
		{"exactly at limit", math.Vec2{X: 0, Y: -10}, 10, math.Vec2{X: 0, Y: -10}},
		{"zero vector", math.Vec2{}, 1, math.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampMagnitude(tt.input, tt.max)
			if !near(got.X, tt.expected.X) || !near(got.Y, tt.expected.Y) {
				t.Errorf("ClampMagnitude(%v, %v) = %v, want %v", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}

func TestCirclePolyline(t *testing.T) {
	points := CirclePolyline(2, 32)
	if len(points) != 33 {
		t.Fatalf("len(CirclePolyline(2, 32)) = %d, want 33", len(points))
	}
	if !near(points[0].X, points[32].X) || !near(points[0].Y, points[32].Y) {
		t.Errorf("polyline not closed: first %v last %v", points[0], points[32])
	}
	for i, p := range points {
		if !near(p.Magnitude(), 2) {
			t.Errorf("point %d at radius %v, want 2", i, p.Magnitude())
		}
	}
}

func TestLerp(t *testing.T) {
	a, b := math.Vec2{X: 0, Y: 2}, math.Vec2{X: 4, Y: -2}
	tests := []struct {
		t    float64
		want math.Vec2
	}{
		{0, a},
		{0.5, math.Vec2{X: 2, Y: 0}},
		{1, b},
	}
	for _, tt := range tests {
		got := Lerp(a, b, tt.t)
		if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", a, b, tt.t, got, tt.want)
		}
	}
}
