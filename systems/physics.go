package systems

import (
	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/automoto/towerclimb/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdatePhysics steps the avatar through this frame's delta. Movement is
// relative to the camera heading from the previous frame.
func UpdatePhysics(w donburi.World) {
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	avatarEntry, ok := tags.Avatar.First(w)
	if !ok {
		return
	}
	towerEntry, ok := tags.Tower.First(w)
	if !ok {
		return
	}

	heading := 0.0
	if cameraEntry, ok := tags.Camera.First(w); ok {
		heading = components.Camera.Get(cameraEntry).State.Heading()
	}

	clock := components.Clock.Get(session)
	input := components.Input.Get(session)
	avatar := components.Avatar.Get(avatarEntry)
	tower := components.Tower.Get(towerEntry).Tower

	wasGrounded := avatar.State.Grounded
	avatar.State = simulation.NewStepper().Step(avatar.State, input.Current, heading, tower, clock.Delta)

	if wasGrounded && !avatar.State.Grounded && avatar.State.Velocity.Y() > 0 {
		PlaySFX(w, config.SoundJump)
	}
	if !wasGrounded && avatar.State.Grounded && avatar.State.SupportID != simulation.NoSupport {
		PlaySFX(w, config.SoundLand)
		p := tower.Platforms[avatar.State.SupportID]
		logger.Debug("landed",
			zap.Int("platform", avatar.State.SupportID),
			zap.Stringer("kind", p.Kind),
			zap.Int("level", p.Level),
			zap.Float64("y", avatar.State.Position.Y()),
		)
	}
}
