package systems

import (
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/notify"
	"github.com/automoto/starlock/systems/factory"
	"github.com/automoto/starlock/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterPresentation subscribes the cosmetic effects to the gameplay
// notifications. Handlers run when the scene drains the event queue.
func RegisterPresentation(e *ecs.ECS) {
	notify.MatchFound.Subscribe(e.World, func(w donburi.World, ev notify.MatchFoundEvent) {
		TriggerScreenShake(e, cfg.ScreenShake.Intensity, cfg.ScreenShake.Duration)
		// Popups float in the unrotated world frame
		world := GetRotation(e).ToWorld(ev.Midpoint)
		factory.CreateScorePopup(e, world, ev.Points, ev.Color)
	})
}

// UpdateEffects ages score popups and removes the expired ones.
func UpdateEffects(e *ecs.ECS) {
	dt := GetClock(e).Delta
	var expired []donburi.Entity

	tags.ScorePopup.Each(e.World, func(entry *donburi.Entry) {
		popup := components.ScorePopup.Get(entry)
		popup.Age += dt
		if popup.Age >= popup.Lifetime {
			expired = append(expired, entry.Entity())
		}
	})

	for _, popup := range expired {
		e.World.Remove(popup)
	}
}
