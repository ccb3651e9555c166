package config

import "testing"

func TestEmbeddedLevelTable(t *testing.T) {
	if got := TotalLevels(); got != 10 {
		t.Fatalf("TotalLevels() = %d, want 10", got)
	}

	tests := []struct {
		name     string
		level    int
		expected LevelConfig
	}{
		{"first level", 1, LevelConfig{Pairs: 3, RotationSpeed: 20, MaxShapesInside: 10}},
		{"first reversed level", 4, LevelConfig{Pairs: 5, RotationSpeed: 35, ReverseRotation: true, MaxShapesInside: 9}},
		{"last level", 10, LevelConfig{Pairs: 10, RotationSpeed: 70, ReverseRotation: true, MaxShapesInside: 6}},
		{"below range clamps to first", 0, LevelConfig{Pairs: 3, RotationSpeed: 20, MaxShapesInside: 10}},
		{"negative clamps to first", -7, LevelConfig{Pairs: 3, RotationSpeed: 20, MaxShapesInside: 10}},
		{"above range clamps to last", 42, LevelConfig{Pairs: 10, RotationSpeed: 70, ReverseRotation: true, MaxShapesInside: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetLevel(tt.level); got != tt.expected {
				t.Errorf("GetLevel(%d) = %+v, want %+v", tt.level, got, tt.expected)
			}
		})
	}
}

func TestParseLevelsRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "levels: [\n"},
		{"empty table", "levels: []\n"},
		{"zero pairs", "levels:\n  - pairs: 0\n    max_shapes_inside: 4\n"},
		{"zero capacity", "levels:\n  - pairs: 2\n    max_shapes_inside: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLevels([]byte(tt.data)); err == nil {
				t.Errorf("ParseLevels(%q) returned nil error", tt.data)
			}
		})
	}
}

func TestLifecycleStateHasCollider(t *testing.T) {
	tests := []struct {
		state    LifecycleState
		expected bool
	}{
		{Outside, true},
		{MovingInside, false},
		{Inside, true},
		{Matched, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.HasCollider(); got != tt.expected {
				t.Errorf("%v.HasCollider() = %v, want %v", tt.state, got, tt.expected)
			}
		})
	}
}
