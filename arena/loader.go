// Package arena loads the playfield geometry from a Tiled map. One map tile
// is one world unit; ellipse objects in the "Arena" group give the zone radii.
package arena

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	cfg "github.com/automoto/starlock/config"
	"github.com/lafriks/go-tiled"
)

//go:embed data/*.tmx
var files embed.FS

// DefaultPath is the embedded arena map.
const DefaultPath = "data/arena.tmx"

// Layout is the zone geometry of one arena.
type Layout struct {
	ContainerRadius   float64
	ContainerCapacity int
	ContainerSegments int
	RingInner         float64
	RingOuter         float64
	RingSegments      int
	PixelsPerUnit     float64
}

// Default returns the layout built from the config package.
func Default() Layout {
	return Layout{
		ContainerRadius:   cfg.Container.Radius,
		ContainerCapacity: cfg.Container.MaxShapesInside,
		ContainerSegments: cfg.Container.Segments,
		RingInner:         cfg.OuterRing.InnerRadius,
		RingOuter:         cfg.OuterRing.OuterRadius,
		RingSegments:      cfg.OuterRing.Segments,
		PixelsPerUnit:     cfg.Camera.PixelsPerUnit,
	}
}

// LoadEmbedded loads the built-in arena map.
func LoadEmbedded() (Layout, error) {
	return Load(files, DefaultPath)
}

// Load parses a TMX file from fsys. Values missing from the map keep their
// defaults.
func Load(fsys fs.FS, tmxPath string) (Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Layout{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 {
		return Layout{}, fmt.Errorf("load TMX %s: tile width must be positive", tmxPath)
	}

	layout := Default()
	unit := float64(levelMap.TileWidth)
	layout.PixelsPerUnit = unit

	found := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Arena" {
			continue
		}
		found = true
		for _, o := range og.Objects {
			radius := o.Width / 2 / unit
			switch o.Name {
			case "container":
				layout.ContainerRadius = radius
				if n := o.Properties.GetInt("capacity"); n > 0 {
					layout.ContainerCapacity = n
				}
				if n := o.Properties.GetInt("segments"); n > 0 {
					layout.ContainerSegments = n
				}
			case "ring_inner":
				layout.RingInner = radius
			case "ring_outer":
				layout.RingOuter = radius
				if n := o.Properties.GetInt("segments"); n > 0 {
					layout.RingSegments = n
				}
			}
		}
	}
	if !found {
		return Layout{}, fmt.Errorf("load TMX %s: no Arena object group", tmxPath)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return layout, nil
}

// Validate checks that the zones nest properly.
func (l Layout) Validate() error {
	switch {
	case l.ContainerRadius <= 0:
		return errors.New("container radius must be positive")
	case l.RingInner < l.ContainerRadius:
		return errors.New("ring inner radius must not be inside the container")
	case l.RingOuter <= l.RingInner:
		return errors.New("ring outer radius must exceed the inner radius")
	case l.ContainerCapacity <= 0:
		return errors.New("container capacity must be positive")
	}
	return nil
}
