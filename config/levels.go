package config

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed data/levels.yaml
var levelsYAML []byte

// LevelConfig is one entry of the level ladder.
type LevelConfig struct {
	Pairs           int     `yaml:"pairs"`
	RotationSpeed   float64 `yaml:"rotation_speed"`
	ReverseRotation bool    `yaml:"reverse_rotation"`
	MaxShapesInside int     `yaml:"max_shapes_inside"`
}

type levelFile struct {
	Levels []LevelConfig `yaml:"levels"`
}

// Levels is the active level table.
var Levels []LevelConfig

var defaultLevel = LevelConfig{
	Pairs:           3,
	RotationSpeed:   20,
	ReverseRotation: false,
	MaxShapesInside: 10,
}

func init() {
	levels, err := ParseLevels(levelsYAML)
	if err != nil {
		log.Warn("could not load level table, using a single default level", "error", err)
		levels = []LevelConfig{defaultLevel}
	}
	Levels = levels
}

// ParseLevels decodes and validates a YAML level table.
func ParseLevels(data []byte) ([]LevelConfig, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse level table: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, errors.New("level table is empty")
	}
	for i, l := range f.Levels {
		if l.Pairs <= 0 {
			return nil, fmt.Errorf("level %d: pairs must be positive, got %d", i+1, l.Pairs)
		}
		if l.MaxShapesInside <= 0 {
			return nil, fmt.Errorf("level %d: max_shapes_inside must be positive, got %d", i+1, l.MaxShapesInside)
		}
	}
	return f.Levels, nil
}

// TotalLevels returns the number of levels in the ladder.
func TotalLevels() int {
	return len(Levels)
}

// GetLevel returns the configuration for a 1-based level number, clamped to
// the table range.
func GetLevel(level int) LevelConfig {
	if len(Levels) == 0 {
		log.Warn("no level table loaded, using default level", "level", level)
		return defaultLevel
	}
	idx := ClampLevel(level) - 1
	return Levels[idx]
}

// ClampLevel clamps a 1-based level number into the table range.
func ClampLevel(level int) int {
	n := len(Levels)
	if n == 0 {
		return 1
	}
	if level < 1 {
		return 1
	}
	if level > n {
		return n
	}
	return level
}
