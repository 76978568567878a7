package systems

import (
	"github.com/automoto/towerclimb/components"
	cfg "github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/tags"
	"github.com/yohamta/donburi"
)

// PlaySFX queues a sound effect to be played this frame.
func PlaySFX(w donburi.World, sound cfg.SoundID) {
	session, ok := tags.Session.First(w)
	if !ok || !session.HasComponent(components.Audio) {
		return
	}
	audio := components.Audio.Get(session)
	audio.PendingSFX = append(audio.PendingSFX, sound)
}

// PendingSFX returns the effects queued so far this frame.
func PendingSFX(w donburi.World) []cfg.SoundID {
	session, ok := tags.Session.First(w)
	if !ok || !session.HasComponent(components.Audio) {
		return nil
	}
	return components.Audio.Get(session).PendingSFX
}

func clearSFX(session *donburi.Entry) {
	if !session.HasComponent(components.Audio) {
		return
	}
	audio := components.Audio.Get(session)
	audio.PendingSFX = audio.PendingSFX[:0]
}
