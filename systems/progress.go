package systems

import (
	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateProgress reports the avatar height once per frame and celebrates
// the first frame at the top.
func UpdateProgress(w donburi.World) {
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	avatarEntry, ok := tags.Avatar.First(w)
	if !ok {
		return
	}
	progress := components.Progress.Get(session)
	height := components.Avatar.Get(avatarEntry).State.Position.Y()

	wasWon := progress.Won
	listeners(w).OnHeightChange(height)

	records := components.Records.Get(session)
	if height > records.BestHeight {
		records.BestHeight = height
		records.Dirty = true
	}

	if progress.Won && !wasWon {
		records.Wins++
		records.Dirty = true
		logger.Info("victory",
			zap.Float64("height", height),
			zap.Float64("elapsed", components.Clock.Get(session).Elapsed),
			zap.Int("checkpoints", progress.Checkpoints),
		)
		PlaySFX(w, config.SoundVictory)
		ShowBanner(w, "Victory! You reached the top")
		FlushRecords(w)
	}
}
