package components

import (
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/yohamta/donburi"
)

// InputSource produces one input snapshot per frame. The window polls the
// keyboard and mouse; headless runs replay a script.
type InputSource interface {
	Poll(frame int) simulation.InputState
}

// InputData stores the current and previous frame's snapshot so systems can
// detect presses.
type InputData struct {
	Source   InputSource
	Current  simulation.InputState
	Previous simulation.InputState
}

var Input = donburi.NewComponentType[InputData]()

// DebugJustPressed reports a fresh press of the debug toggle.
func (d *InputData) DebugJustPressed() bool {
	return d.Current.ToggleDebug && !d.Previous.ToggleDebug
}
