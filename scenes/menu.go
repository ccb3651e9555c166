package scenes

import (
	"sync"

	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the level select menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, services *Services) *MenuScene {
	return &MenuScene{sceneChanger: sc, services: services}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	startLevel := func(level int) {
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, ms.services, cfg.GameModeLevels, level))
	}
	startEndless := func() {
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, ms.services, cfg.GameModeEndless, 0))
	}

	// Minimal systems for menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(startLevel, startEndless))
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	menu := systems.GetOrCreateMenu(ms.ecs)
	menu.BestEndless = ms.services.bestEndless()
	if progress := ms.services.Progress; progress != nil {
		menu.Unlocked = progress.UnlockedLevel()
		menu.Stars = make([]int, cfg.TotalLevels())
		for i := range menu.Stars {
			menu.Stars[i] = progress.LevelStars(i + 1)
		}
		menu.SelectedLevel = cfg.ClampLevel(menu.Unlocked)
	} else {
		// Without storage every level is playable
		menu.Unlocked = cfg.TotalLevels()
	}
}
