package scenes

import (
	"fmt"

	"github.com/automoto/starlock/arena"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/signal"
	"github.com/automoto/starlock/systems"
	"github.com/automoto/starlock/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// GameplayOptions configures one round.
type GameplayOptions struct {
	Mode   cfg.GameModeID
	Level  int
	Seed   int64
	Layout arena.Layout

	// Interactive adds device polling, the pause toggle and the renderers.
	Interactive bool
	// BotInterval adds an auto-tapper tapping this often, in seconds.
	BotInterval float64
}

// Gameplay is a fully wired round. It owns the signal subscriptions between
// the gameplay systems and releases them on Close.
type Gameplay struct {
	ECS   *ecs.ECS
	Scope *signal.Scope
}

// BuildGameplay creates the world, the arena and the session, registers the
// systems in simulation order and starts the round.
func BuildGameplay(opts GameplayOptions) (*Gameplay, error) {
	if err := opts.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("scenes: arena layout: %w", err)
	}
	if opts.Mode == cfg.GameModeNone {
		opts.Mode = cfg.GameModeLevels
	}

	e := ecs.NewECS(donburi.NewWorld())

	if opts.Interactive {
		// Systems that always run
		e.AddSystem(systems.UpdateInput)
		e.AddSystem(systems.UpdatePause)
		e.AddSystem(systems.UpdateDebug)
	}

	// Game systems wrapped with pause checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateScheduler))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTapRouter))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBots))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEndless))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateRotation))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateOrbitalForces))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateOrbitalDamping))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTransitions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	if opts.Interactive {
		e.AddRenderer(cfg.Default, systems.DrawArena)
		e.AddRenderer(cfg.Default, systems.DrawShapes)
		e.AddRenderer(cfg.Default, systems.DrawScorePopups)
		e.AddRenderer(cfg.Default, systems.DrawHUD)
		e.AddRenderer(cfg.Default, systems.DrawPause)
		e.AddRenderer(cfg.Default, systems.DrawSummary)
		e.AddRenderer(cfg.Default, systems.DrawDebug)
	}

	factory.CreateSession(e, opts.Seed)
	factory.CreateArena(e, opts.Layout)
	factory.CreateSpace(e, opts.Layout.RingOuter+1, opts.Layout.PixelsPerUnit)
	factory.CreateCamera(e, opts.Layout.PixelsPerUnit)

	g := &Gameplay{
		ECS:   e,
		Scope: systems.WireGameplay(e),
	}
	systems.RegisterPresentation(e)
	if opts.BotInterval > 0 {
		systems.CreateBot(e, opts.BotInterval)
	}

	systems.StartRound(e, opts.Mode, opts.Level)
	return g, nil
}

// Step runs one fixed simulation step and delivers the queued
// notifications.
func (g *Gameplay) Step() {
	g.ECS.Update()
	events.ProcessAllEvents(g.ECS.World)
}

// Close disconnects the gameplay wiring.
func (g *Gameplay) Close() {
	g.Scope.Close()
}
