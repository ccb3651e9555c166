package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// ShapeConfig contains per-shape transition and body tuning.
type ShapeConfig struct {
	Radius               float64 // Collider radius in world units
	MoveInsideDuration   float64 // Seconds for the Outside->Inside flight
	MatchedScaleDuration float64 // Seconds for the full scale-out
	MatchedScalePeak     float64 // Scale reached halfway through the scale-out
	LinearDrag           float64
	Mass                 float64
}

// ContainerConfig describes the central containment circle.
type ContainerConfig struct {
	Radius          float64
	MaxShapesInside int
	Segments        int
	InteriorSpread  float64 // Fraction of the radius used by RandomInteriorPoint
}

// OuterRingConfig describes the rotating band around the container.
type OuterRingConfig struct {
	InnerRadius float64
	OuterRadius float64
	Segments    int
}

// RotationConfig contains pivot rotation defaults.
type RotationConfig struct {
	DefaultSpeed float64 // Degrees per second used when no level is configured
}

// OrbitConfig tunes the force field applied to shapes in the outer ring.
type OrbitConfig struct {
	TangentialMultiplier  float64
	CentrifugalMultiplier float64
	MaxForce              float64
	MaxVelocity           float64
	Damping               float64 // Per-step multiplicative velocity damp
	MinDistance           float64 // No force is applied closer than this to the center
	ReferenceSpeed        float64 // Rotation speed that maps to a speed factor of 1
	IdleSpeed             float64 // Below this |speed| the field is off
}

// TapConfig tunes tap routing.
type TapConfig struct {
	Radius     float64
	ImpulseMin float64
	ImpulseMax float64
}

// MatchConfig tunes the match engine.
type MatchConfig struct {
	CheckDelay     float64
	PointsPerMatch int
}

// RoundConfig tunes end-of-round sequencing.
type RoundConfig struct {
	SummaryDelay float64
}

// SpawnerConfig tunes the initial shape placement.
type SpawnerConfig struct {
	MinDistance  float64
	MaxAttempts  int
	BandVariance float64 // Fraction of the band width around the mid radius
}

// EndlessConfig tunes endless mode pacing.
type EndlessConfig struct {
	InitialShapes         int
	SpawnInterval         float64
	MinSpawnInterval      float64
	SpawnIntervalDecrease float64
	MaxShapesOnScreen     int
	StartSpeed            float64
	MaxSpeed              float64
	SpeedIncrease         float64
	SpeedIncreaseInterval float64
	ReversalEvery         int
}

// CameraConfig maps world units onto the screen.
type CameraConfig struct {
	PixelsPerUnit float64
}

// ScreenShakeConfig contains the match screen shake settings
type ScreenShakeConfig struct {
	Intensity float64 // Pixels
	Duration  float64 // Seconds
}

// HUDConfig contains HUD and overlay rendering settings.
type HUDConfig struct {
	Margin          float64
	TextColor       color.RGBA
	AccentColor     color.RGBA
	ContainerColor  color.RGBA
	FullColor       color.RGBA
	RingColor       color.RGBA
	OverlayColor    color.RGBA
	ScorePopupTime  float64 // Seconds a score pop stays visible
	ScorePopupRise  float64 // Pixels the score pop rises over its lifetime
	PauseButtonSize int
}

// Global configuration instances
var C *Config
var Shape ShapeConfig
var Container ContainerConfig
var OuterRing OuterRingConfig
var Rotation RotationConfig
var Orbit OrbitConfig
var Tap TapConfig
var Match MatchConfig
var Round RoundConfig
var Spawner SpawnerConfig
var Endless EndlessConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var HUD HUDConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Skip menu and go directly to the game
	StartLevel int
	Endless    bool
	Colliders  bool // Draw the collider overlay
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Background   = color.RGBA{R: 18, G: 16, B: 32, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
		Title:  "Starlock",
	}

	Shape = ShapeConfig{
		Radius:               0.25,
		MoveInsideDuration:   0.3,
		MatchedScaleDuration: 0.2,
		MatchedScalePeak:     1.3,
		LinearDrag:           0.5,
		Mass:                 1.0,
	}

	Container = ContainerConfig{
		Radius:          2.0,
		MaxShapesInside: 10,
		Segments:        32,
		InteriorSpread:  0.8,
	}

	OuterRing = OuterRingConfig{
		InnerRadius: 2.2,
		OuterRadius: 4.0,
		Segments:    64,
	}

	Rotation = RotationConfig{
		DefaultSpeed: 60,
	}

	Orbit = OrbitConfig{
		TangentialMultiplier:  2.0,
		CentrifugalMultiplier: 0.5,
		MaxForce:              10.0,
		MaxVelocity:           8.0,
		Damping:               0.98,
		MinDistance:           0.1,
		ReferenceSpeed:        60,
		IdleSpeed:             0.01,
	}

	Tap = TapConfig{
		Radius:     0.5,
		ImpulseMin: 2.0,
		ImpulseMax: 4.0,
	}

	Match = MatchConfig{
		CheckDelay:     0.1,
		PointsPerMatch: 100,
	}

	Round = RoundConfig{
		SummaryDelay: 0.5,
	}

	Spawner = SpawnerConfig{
		MinDistance:  0.5,
		MaxAttempts:  20,
		BandVariance: 0.3,
	}

	Endless = EndlessConfig{
		InitialShapes:         6,
		SpawnInterval:         3.0,
		MinSpawnInterval:      1.0,
		SpawnIntervalDecrease: 0.05,
		MaxShapesOnScreen:     20,
		StartSpeed:            30,
		MaxSpeed:              100,
		SpeedIncrease:         1,
		SpeedIncreaseInterval: 10,
		ReversalEvery:         5,
	}

	Camera = CameraConfig{
		PixelsPerUnit: 40,
	}

	ScreenShake = ScreenShakeConfig{
		Intensity: 3.0,
		Duration:  0.15,
	}

	HUD = HUDConfig{
		Margin:          10,
		TextColor:       White,
		AccentColor:     BrightYellow,
		ContainerColor:  color.RGBA{R: 120, G: 110, B: 200, A: 255},
		FullColor:       LightRed,
		RingColor:       color.RGBA{R: 70, G: 64, B: 120, A: 255},
		OverlayColor:    BlackOverlay,
		ScorePopupTime:  0.6,
		ScorePopupRise:  24,
		PauseButtonSize: 28,
	}

	Debug = DebugConfig{
		StartLevel: 1,
	}
}
