package render

import (
	"image/color"

	"github.com/automoto/towerclimb/shared/leveldata"
)

var (
	skyColor    = color.RGBA{135, 206, 235, 255}
	avatarColor = color.RGBA{255, 107, 107, 255}
	textColor   = color.RGBA{255, 255, 255, 255}
	panelColor  = color.RGBA{0, 0, 0, 140}
	barColor    = color.RGBA{76, 175, 80, 255}
)

var kindColors = map[leveldata.Kind]color.RGBA{
	leveldata.KindSpawn:      {76, 175, 80, 255},
	leveldata.KindNormal:     {139, 69, 19, 255},
	leveldata.KindCheckpoint: {33, 150, 243, 255},
	leveldata.KindJumpPad:    {255, 235, 59, 255},
	leveldata.KindSpeedPad:   {0, 229, 255, 255},
	leveldata.KindMoving:     {156, 39, 176, 255},
	leveldata.KindSpinner:    {244, 67, 54, 255},
	leveldata.KindHazard:     {255, 87, 34, 255},
	leveldata.KindBridge:     {121, 85, 72, 255},
	leveldata.KindVictory:    {255, 215, 0, 255},
}

// shade darkens c by the light factor f in [0, 1].
func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
