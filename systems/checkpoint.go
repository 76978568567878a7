package systems

import (
	"fmt"

	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/automoto/towerclimb/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateCheckpoints records checkpoint crossings and respawns an avatar that
// fell below the floor threshold.
func UpdateCheckpoints(w donburi.World) {
	avatarEntry, ok := tags.Avatar.First(w)
	if !ok {
		return
	}
	avatar := components.Avatar.Get(avatarEntry)
	tracker := components.Checkpoints.Get(avatarEntry)

	fresh := tracker.Observe(avatar.State)
	if len(fresh) > 0 {
		notify := listeners(w)
		for _, id := range fresh {
			notify.OnCheckpoint()
			logger.Info("checkpoint reached",
				zap.Int("id", id),
				zap.Float64("y", avatar.State.Position.Y()),
			)
		}
		PlaySFX(w, config.SoundCheckpoint)
		ShowBanner(w, fmt.Sprintf("Checkpoint %d/%d", tracker.Record.LastID, tracker.MaxID()))
		recordCheckpoints(w, tracker.Record.Count())
	}

	if avatar.State.Position.Y() < config.Physics.FallRespawnY {
		respawnAvatar(w, avatarEntry, "fell")
	}
}

// respawnAvatar moves the avatar back to its respawn point and snaps the
// camera so it does not sweep across the tower.
func respawnAvatar(w donburi.World, avatarEntry *donburi.Entry, reason string) {
	avatar := components.Avatar.Get(avatarEntry)
	tracker := components.Checkpoints.Get(avatarEntry)

	from := avatar.State.Position
	avatar.State = tracker.Respawn(avatar.State)
	avatar.Respawns++
	immunize(w, avatar)
	PlaySFX(w, config.SoundRespawn)

	if cameraEntry, ok := tags.Camera.First(w); ok {
		camera := components.Camera.Get(cameraEntry)
		simulation.NewCameraRig().Snap(&camera.State, avatar.State.Position)
	}

	logger.Info("respawn",
		zap.String("reason", reason),
		zap.Float64("from_y", from.Y()),
		zap.Float64("to_y", avatar.State.Position.Y()),
		zap.Int("checkpoint", tracker.Record.RespawnID),
		zap.Int("respawns", avatar.Respawns),
	)
}

// listeners returns everything that wants height and checkpoint
// notifications, Progress first.
func listeners(w donburi.World) simulation.Listeners {
	session, ok := tags.Session.First(w)
	if !ok {
		return nil
	}
	ls := simulation.Listeners{components.Progress.Get(session)}
	return append(ls, components.Listener.Get(session).Listeners...)
}
