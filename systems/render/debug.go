package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/automoto/towerclimb/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	minimapSize   = 180
	minimapMargin = 10
)

// DrawDebug renders a top-down minimap of the trigger space plus the avatar
// state when the debug overlay is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	session, ok := tags.Session.First(e.World)
	if !ok || !components.Settings.Get(session).Debug {
		return
	}
	towerEntry, ok := tags.Tower.First(e.World)
	if !ok {
		return
	}
	tower := components.Tower.Get(towerEntry)
	if tower.Triggers == nil {
		return
	}
	loadFaces()

	space := tower.Triggers.Space
	left := float32(screen.Bounds().Dx() - minimapSize - minimapMargin)
	top := float32(minimapMargin)
	scale := float32(minimapSize) / float32(space.Width()*space.CellWidth)

	vector.FillRect(screen, left, top, minimapSize, minimapSize, panelColor, false)

	// Solid platforms as filled footprints, triggers as outlines
	for _, p := range tower.Tower.Platforms {
		if !p.Kind.Solid() {
			continue
		}
		x0, z0 := tower.Triggers.ToSpace(p.Position.X()-p.HalfExtents.X(), p.Position.Z()-p.HalfExtents.Z())
		x1, z1 := tower.Triggers.ToSpace(p.Position.X()+p.HalfExtents.X(), p.Position.Z()+p.HalfExtents.Z())
		c := kindColors[p.Kind]
		c.A = 120
		vector.FillRect(screen, left+float32(x0)*scale, top+float32(z0)*scale,
			float32(x1-x0)*scale, float32(z1-z0)*scale, c, false)
	}
	for _, obj := range tower.Triggers.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if id, ok := obj.Data.(int); ok {
			c = kindColors[tower.Tower.Platforms[id].Kind]
		}
		vector.StrokeRect(screen, left+float32(obj.X)*scale, top+float32(obj.Y)*scale,
			float32(obj.W)*scale, float32(obj.H)*scale, 1, c, false)
	}

	avatarEntry, ok := tags.Avatar.First(e.World)
	if !ok {
		return
	}
	avatar := components.Avatar.Get(avatarEntry)
	s := avatar.State
	ax, az := tower.Triggers.ToSpace(s.Position.X(), s.Position.Z())
	vector.FillCircle(screen, left+float32(ax)*scale, top+float32(az)*scale, 3, avatarColor, false)

	support := "airborne"
	if s.SupportID != simulation.NoSupport {
		p := tower.Tower.Platforms[s.SupportID]
		support = fmt.Sprintf("%s #%d level %d", p.Kind, s.SupportID, p.Level)
	}
	tracker := components.Checkpoints.Get(avatarEntry)
	lines := []string{
		fmt.Sprintf("seed %d  fps %.0f", tower.Seed, ebiten.ActualFPS()),
		fmt.Sprintf("pos %.2f %.2f %.2f", s.Position.X(), s.Position.Y(), s.Position.Z()),
		fmt.Sprintf("vel %.2f %.2f %.2f", s.Velocity.X(), s.Velocity.Y(), s.Velocity.Z()),
		fmt.Sprintf("on %s", support),
		fmt.Sprintf("level %d  checkpoints %v", tracker.LevelIndex(s.Position.Y()), tracker.Record.IDs()),
		fmt.Sprintf("boost %.2fs  respawns %d", s.SpeedBoost, avatar.Respawns),
	}
	op := &text.DrawOptions{}
	for i, line := range lines {
		op.GeoM.Reset()
		op.GeoM.Translate(float64(left), float64(top+minimapSize+minimapMargin)+float64(i*16))
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, line, smallFace, op)
	}
}
