package components

import (
	cfg "github.com/automoto/towerclimb/config"
	"github.com/yohamta/donburi"
)

// AudioData queues the effects raised during a frame (singleton component).
// The sound player drains it; headless runs drop it at the next frame.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
