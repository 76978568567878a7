package systems

import (
	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/automoto/towerclimb/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateInput polls the session's input source. Must run before any system
// that reads input.
func UpdateInput(w donburi.World) {
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	input := components.Input.Get(session)

	// Swap buffers: current becomes previous, then poll a fresh snapshot
	input.Previous = input.Current
	input.Current = simulation.InputState{}
	if input.Source != nil {
		input.Current = input.Source.Poll(components.Clock.Get(session).Frame)
	}

	if input.DebugJustPressed() {
		settings := components.Settings.Get(session)
		settings.Debug = !settings.Debug
		logger.Debug("debug overlay toggled", zap.Bool("enabled", settings.Debug))
	}
}
