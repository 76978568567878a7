package systems

import (
	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/tags"
	"github.com/yohamta/donburi"
)

// UpdateClock starts a new frame of Step seconds and drops last frame's
// sound queue.
func UpdateClock(w donburi.World) {
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	clearSFX(session)

	clock := components.Clock.Get(session)
	clock.Frame++
	clock.Delta = clock.Step
	clock.Elapsed += clock.Delta
}
