package systems

import (
	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/leveldata"
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/automoto/towerclimb/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateTriggers applies pad and hazard effects for the trigger volumes the
// avatar touches after physics.
func UpdateTriggers(w donburi.World) {
	avatarEntry, ok := tags.Avatar.First(w)
	if !ok {
		return
	}
	towerEntry, ok := tags.Tower.First(w)
	if !ok {
		return
	}
	triggers := components.Tower.Get(towerEntry).Triggers
	if triggers == nil {
		return
	}
	avatar := components.Avatar.Get(avatarEntry)

	hits := triggers.Contacts(avatar.State)
	dropImmunity(avatar, hits)

	for _, hit := range hits {
		switch hit.Kind {
		case leveldata.KindJumpPad:
			if !avatar.State.Grounded {
				continue
			}
			avatar.State.Velocity[1] = config.Physics.JumpPadImpulse
			avatar.State.Grounded = false
			avatar.State.SupportID = simulation.NoSupport
			PlaySFX(w, config.SoundJumpPad)
			logger.Debug("jump pad", zap.Int("platform", hit.PlatformID))
		case leveldata.KindSpeedPad:
			if avatar.State.SpeedBoost <= 0 {
				PlaySFX(w, config.SoundSpeedPad)
				logger.Debug("speed pad", zap.Int("platform", hit.PlatformID))
			}
			avatar.State.SpeedBoost = config.Physics.SpeedPadDuration
		case leveldata.KindSpinner, leveldata.KindHazard:
			if _, ok := avatar.Immune[hit.PlatformID]; ok {
				continue
			}
			respawnAvatar(w, avatarEntry, hit.Kind.String())
			return
		}
	}
}

func lethal(kind leveldata.Kind) bool {
	return kind == leveldata.KindSpinner || kind == leveldata.KindHazard
}

// immunize marks the hazards overlapping a fresh respawn point so a respawn
// inside one does not trigger again next frame.
func immunize(w donburi.World, avatar *components.AvatarData) {
	avatar.Immune = nil
	towerEntry, ok := tags.Tower.First(w)
	if !ok {
		return
	}
	triggers := components.Tower.Get(towerEntry).Triggers
	if triggers == nil {
		return
	}
	for _, hit := range triggers.Contacts(avatar.State) {
		if !lethal(hit.Kind) {
			continue
		}
		if avatar.Immune == nil {
			avatar.Immune = map[int]struct{}{}
		}
		avatar.Immune[hit.PlatformID] = struct{}{}
		logger.Warn("respawn point inside hazard", zap.Int("platform", hit.PlatformID))
	}
}

// dropImmunity forgets hazards the avatar no longer touches.
func dropImmunity(avatar *components.AvatarData, hits []simulation.TriggerHit) {
	for id := range avatar.Immune {
		touching := false
		for _, hit := range hits {
			if hit.PlatformID == id {
				touching = true
				break
			}
		}
		if !touching {
			delete(avatar.Immune, id)
		}
	}
}
