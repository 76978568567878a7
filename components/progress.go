package components

import (
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/yohamta/donburi"
)

var Progress = donburi.NewComponentType[simulation.Progress]()

// ListenerData receives height and checkpoint notifications besides Progress.
type ListenerData struct {
	Listeners simulation.Listeners
}

var Listener = donburi.NewComponentType[ListenerData]()
