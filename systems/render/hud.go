package render

import (
	"fmt"

	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/fonts"
	"github.com/automoto/towerclimb/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin    = 10
	hudWidth     = 240
	hudLine      = 22
	hudBarHeight = 8
)

// Cached faces (lazy initialized)
var (
	hudFace    *text.GoXFace
	smallFace  *text.GoXFace
	bannerFace *text.GoXFace
)

func loadFaces() {
	if hudFace != nil {
		return
	}
	hudFace = text.NewGoXFace(fonts.Regular.Get())
	smallFace = text.NewGoXFace(fonts.Small.Get())
	bannerFace = text.NewGoXFace(fonts.Title.Get())
}

// DrawHUD renders height, stage, zone and checkpoint progress in the
// top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session, ok := tags.Session.First(e.World)
	if !ok {
		return
	}
	loadFaces()
	progress := components.Progress.Get(session)
	records := components.Records.Get(session)

	lines := []string{
		fmt.Sprintf("Height: %.1fm", max(0, progress.Height)),
		fmt.Sprintf("Stage %d: %s", progress.Stage, progress.Zone),
		fmt.Sprintf("Checkpoints: %d/%d", progress.Checkpoints, progress.Config.TotalCheckpoints),
		fmt.Sprintf("Best: %.1fm  Wins: %d", records.BestHeight, records.Wins),
	}

	panelHeight := float32(len(lines)*hudLine + hudBarHeight + 2*hudMargin)
	vector.FillRect(screen, hudMargin, hudMargin, hudWidth, panelHeight, panelColor, false)

	op := &text.DrawOptions{}
	for i, line := range lines {
		op.GeoM.Reset()
		op.GeoM.Translate(2*hudMargin, float64(hudMargin+hudMargin/2+i*hudLine))
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, line, hudFace, op)
	}

	barY := float32(hudMargin + hudMargin + len(lines)*hudLine)
	barWidth := float32(hudWidth - 2*hudMargin)
	vector.FillRect(screen, 2*hudMargin, barY, barWidth, hudBarHeight, shade(textColor, 0.3), false)
	vector.FillRect(screen, 2*hudMargin, barY, barWidth*float32(progress.Percent()/100), hudBarHeight, barColor, false)

	drawHelp(screen)
}

func drawHelp(screen *ebiten.Image) {
	const help = "WASD move  Space jump  Q/E/R/F camera  Click to capture mouse  F3 debug"
	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, float64(screen.Bounds().Dy()-hudMargin-hudLine))
	op.ColorScale.ScaleWithColor(textColor)
	op.ColorScale.ScaleAlpha(0.7)
	text.Draw(screen, help, smallFace, op)
}

// DrawBanner renders the fading checkpoint or victory announcement.
func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	session, ok := tags.Session.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(session)
	if banner.Text == "" || banner.Alpha <= 0 {
		return
	}
	loadFaces()

	w, h := text.Measure(banner.Text, bannerFace, 0)
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	op := &text.DrawOptions{}
	op.GeoM.Translate((sw-w)/2, sh/3-h/2)
	op.ColorScale.ScaleWithColor(textColor)
	op.ColorScale.ScaleAlpha(banner.Alpha)
	text.Draw(screen, banner.Text, bannerFace, op)
}
