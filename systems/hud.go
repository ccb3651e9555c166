package systems

import (
	"fmt"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/fonts"
	"github.com/automoto/starlock/persistence"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the score, the level or survival time and the container
// fill in the top corners.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	round := GetRound(e)
	match := GetMatch(e)
	container := GetContainer(e)
	margin := int(cfg.HUD.Margin)
	face := fonts.Regular.Get()

	text.Draw(screen, fmt.Sprintf("SCORE %d", match.Score), fonts.Bold.Get(), margin, margin+14, cfg.HUD.AccentColor)

	var status string
	if round.Mode == cfg.GameModeEndless {
		status = "ENDLESS " + persistence.FormatTime(round.Elapsed)
	} else {
		status = fmt.Sprintf("LEVEL %d/%d", round.Level, cfg.TotalLevels())
	}
	text.Draw(screen, status, face, margin, margin+30, cfg.HUD.TextColor)

	fill := fmt.Sprintf("%d/%d", container.Count(), container.Capacity)
	fillColor := cfg.HUD.TextColor
	if container.IsFull() {
		fillColor = cfg.HUD.FullColor
	}
	width := text.BoundString(face, fill).Dx()
	text.Draw(screen, fill, face, screen.Bounds().Dx()-margin-width, screen.Bounds().Dy()-margin, fillColor)
}

// DrawSummary renders the end-of-round panel once the summary delay has
// passed.
func DrawSummary(e *ecs.ECS, screen *ebiten.Image) {
	round := GetRound(e)
	if !round.ShowSummary {
		return
	}
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.HUD.OverlayColor, false)

	lines := summaryLines(round)
	title := lines[0]
	titleFace := fonts.Title.Get()
	titleColor := cfg.HUD.FullColor
	if round.IsVictory() {
		titleColor = cfg.HUD.AccentColor
	}
	tw := text.BoundString(titleFace, title).Dx()
	y := height/2 - 40
	text.Draw(screen, title, titleFace, width/2-tw/2, y, titleColor)

	face := fonts.Regular.Get()
	for _, line := range lines[1:] {
		y += 22
		lw := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, width/2-lw/2, y, cfg.HUD.TextColor)
	}
}

func summaryLines(round *components.RoundData) []string {
	if round.IsVictory() {
		stars := persistence.Stars(round.FinalScore, round.Pairs, cfg.Match.PointsPerMatch)
		lines := []string{
			"LEVEL COMPLETE",
			fmt.Sprintf("Score %d", round.FinalScore),
			fmt.Sprintf("Stars %d/3", stars),
		}
		if round.HasNextLevel {
			return append(lines, "Enter: next level   R: retry   M: menu")
		}
		return append(lines, "All levels cleared!   R: retry   M: menu")
	}

	lines := []string{"GAME OVER", fmt.Sprintf("Score %d", round.FinalScore)}
	if round.Mode == cfg.GameModeEndless {
		lines = append(lines, "Survived "+persistence.FormatTime(round.Elapsed))
	}
	return append(lines, "R: retry   M: menu")
}
