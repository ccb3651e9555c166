package main

import (
	"image"

	"github.com/automoto/starlock/config"
	"github.com/automoto/starlock/fonts"
	"github.com/automoto/starlock/persistence"
	"github.com/automoto/starlock/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel   int
	flagEndless bool
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window on the level select menu.

Examples:
  starlock play
  starlock play --level 4
  starlock play --endless`,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly on this level")
		cmd.Flags().BoolVar(&flagEndless, "endless", false, "Start directly in endless mode")
		cmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the collider overlay (toggle with F3)")
	}
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(services *scenes.Services) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	switch {
	case config.Debug.Endless:
		g.scene = scenes.NewWorldScene(g, services, config.GameModeEndless, 0)
	case config.Debug.SkipMenu:
		g.scene = scenes.NewWorldScene(g, services, config.GameModeLevels, config.Debug.StartLevel)
	default:
		g.scene = scenes.NewMenuScene(g, services)
	}
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	config.Debug.Endless = flagEndless
	config.Debug.Colliders = flagDebug
	if flagLevel > 0 {
		config.Debug.SkipMenu = true
		config.Debug.StartLevel = config.ClampLevel(flagLevel)
	}

	services := &scenes.Services{
		Layout: loadLayout(),
		Seed:   flagSeed,
	}

	progress, err := persistence.OpenProgress(appName)
	if err != nil {
		log.Warn("could not open progress store, progress will not be saved", "err", err)
	} else {
		services.Progress = progress
	}

	highscores, err := persistence.OpenHighscores(flagDBPath)
	if err != nil {
		log.Warn("could not open highscore database", "path", flagDBPath, "err", err)
	} else {
		services.Highscores = highscores
		defer highscores.Close()
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(NewGame(services))
}
