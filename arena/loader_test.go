package arena

import (
	"math"
	"testing"
	"testing/fstest"
)

func TestLoadEmbedded(t *testing.T) {
	layout, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"container radius", layout.ContainerRadius, 2.0},
		{"ring inner", layout.RingInner, 2.2},
		{"ring outer", layout.RingOuter, 4.0},
		{"pixels per unit", layout.PixelsPerUnit, 40},
		{"capacity", float64(layout.ContainerCapacity), 10},
		{"container segments", float64(layout.ContainerSegments), 32},
		{"ring segments", float64(layout.RingSegments), 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.expected) > 1e-9 {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestLoadRejectsBadMaps(t *testing.T) {
	const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="10" tileheight="10" infinite="0">
`
	tests := []struct {
		name string
		body string
	}{
		{"missing group", `</map>`},
		{"ring inside container", ` <objectgroup id="1" name="Arena">
  <object id="1" name="container" x="0" y="0" width="40" height="40"><ellipse/></object>
  <object id="2" name="ring_inner" x="0" y="0" width="20" height="20"><ellipse/></object>
  <object id="3" name="ring_outer" x="0" y="0" width="60" height="60"><ellipse/></object>
 </objectgroup>
</map>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"bad.tmx": {Data: []byte(header + tt.body)}}
			if _, err := Load(fsys, "bad.tmx"); err == nil {
				t.Error("Load() returned nil error")
			}
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}
