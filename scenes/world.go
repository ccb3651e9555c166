package scenes

import (
	"sync"

	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/notify"
	"github.com/automoto/starlock/systems"
	"github.com/automoto/starlock/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// WorldScene plays one round in the window.
type WorldScene struct {
	sceneChanger SceneChanger
	services     *Services
	mode         cfg.GameModeID
	level        int

	gameplay *Gameplay
	pauseUI  *ui.PauseUI
	once     sync.Once
	armed    bool // Set once keys held from the previous scene are released
}

// NewWorldScene creates a round scene for a mode and level.
func NewWorldScene(sc SceneChanger, services *Services, mode cfg.GameModeID, level int) *WorldScene {
	return &WorldScene{sceneChanger: sc, services: services, mode: mode, level: level}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.gameplay == nil {
		return
	}

	ws.pauseUI.Update()
	ws.gameplay.Step()

	e := ws.gameplay.ECS
	round := systems.GetRound(e)
	ws.pauseUI.SetEnabled(!round.IsTerminal())
	ws.pauseUI.SetPaused(systems.GetOrCreatePause(e).IsPaused)

	input := systems.GetOrCreateInput(e)
	if !ws.armed {
		ws.armed = !systems.AnyActionPressed(input)
		return
	}
	switch {
	case systems.GetAction(input, cfg.ActionRestart).JustPressed:
		ws.changeTo(NewWorldScene(ws.sceneChanger, ws.services, ws.mode, round.Level))
	case round.ShowSummary && systems.GetAction(input, cfg.ActionMenuBack).JustPressed:
		ws.changeTo(NewMenuScene(ws.sceneChanger, ws.services))
	case round.ShowSummary && round.HasNextLevel && systems.GetAction(input, cfg.ActionMenuSelect).JustPressed:
		ws.changeTo(NewWorldScene(ws.sceneChanger, ws.services, ws.mode, round.Level+1))
	}
}

func (ws *WorldScene) changeTo(next interface{}) {
	ws.gameplay.Close()
	ws.sceneChanger.ChangeScene(next)
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ws.gameplay == nil {
		return
	}
	ws.gameplay.ECS.Draw(screen)
	ws.pauseUI.Draw(screen)
}

func (ws *WorldScene) configure() {
	gameplay, err := BuildGameplay(GameplayOptions{
		Mode:        ws.mode,
		Level:       ws.level,
		Seed:        ws.services.NextSeed(),
		Layout:      ws.services.Layout,
		Interactive: true,
	})
	if err != nil {
		log.Error("could not start round", "err", err)
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger, ws.services))
		return
	}
	ws.gameplay = gameplay
	e := gameplay.ECS

	ws.pauseUI = ui.NewPauseUI(cfg.HUD.PauseButtonSize, func() {
		systems.TogglePause(e)
	})
	systems.GetOrCreateInput(e).OverUI = ws.pauseUI.Contains

	notify.Victory.Subscribe(e.World, func(w donburi.World, ev notify.VictoryEvent) {
		ws.services.RecordVictory(ev)
	})
	notify.GameOver.Subscribe(e.World, func(w donburi.World, ev notify.GameOverEvent) {
		ws.services.RecordGameOver(ev)
	})
}
