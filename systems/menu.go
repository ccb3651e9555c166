package systems

import (
	"fmt"
	"os"
	"strings"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	menuColumns    = 5
	menuCellWidth  = 96
	menuCellHeight = 56
	menuTitleY     = 60
)

// NewUpdateMenu creates the level select system. onLevel starts a level and
// onEndless starts endless mode.
func NewUpdateMenu(onLevel func(level int), onEndless func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := GetOrCreateInput(e)
		if !menu.Armed {
			menu.Armed = !AnyActionPressed(input)
			return
		}
		total := cfg.TotalLevels()
		if total == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedLevel = (menu.SelectedLevel-2+total)%total + 1
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedLevel = menu.SelectedLevel%total + 1
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed && menu.SelectedLevel <= menu.Unlocked {
			onLevel(menu.SelectedLevel)
			return
		}
		if GetAction(input, cfg.ActionEndless).JustPressed {
			onEndless()
			return
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the level select grid with stars and locks.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Background, false)

	titleFace := fonts.Title.Get()
	title := cfg.C.Title
	tw := text.BoundString(titleFace, title).Dx()
	text.Draw(screen, title, titleFace, width/2-tw/2, menuTitleY, cfg.HUD.AccentColor)

	total := cfg.TotalLevels()
	gridWidth := menuColumns * menuCellWidth
	startX := (width - gridWidth) / 2
	startY := menuTitleY + 30
	face := fonts.Bold.Get()
	small := fonts.Small.Get()

	for level := 1; level <= total; level++ {
		col := (level - 1) % menuColumns
		row := (level - 1) / menuColumns
		x := startX + col*menuCellWidth
		y := startY + row*menuCellHeight

		cellColor := cfg.DarkBlue
		if level == menu.SelectedLevel {
			cellColor = cfg.LightBlue
		}
		vector.DrawFilledRect(screen, float32(x+4), float32(y+4), menuCellWidth-8, menuCellHeight-8, cellColor, false)

		label := fmt.Sprintf("%d", level)
		if level > menu.Unlocked {
			label = "LOCK"
		}
		lw := text.BoundString(face, label).Dx()
		text.Draw(screen, label, face, x+menuCellWidth/2-lw/2, y+26, cfg.White)

		stars := starString(menuStars(menu, level))
		sw := text.BoundString(small, stars).Dx()
		text.Draw(screen, stars, small, x+menuCellWidth/2-sw/2, y+42, cfg.BrightYellow)
	}

	hint := fmt.Sprintf("Up/Down: Select   Enter: Play   E: Endless (best %d)", menu.BestEndless)
	hw := text.BoundString(small, hint).Dx()
	text.Draw(screen, hint, small, width/2-hw/2, height-12, cfg.White)
}

func menuStars(menu *components.MenuData, level int) int {
	if level-1 < len(menu.Stars) {
		return menu.Stars[level-1]
	}
	return 0
}

func starString(stars int) string {
	return strings.Repeat("*", stars) + strings.Repeat("-", 3-stars)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			SelectedLevel: 1,
			Unlocked:      1,
		})
	}
	return components.Menu.Get(entry)
}
