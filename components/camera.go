package components

import (
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	State     simulation.CameraState
	Transform simulation.Transform // Last transform handed to the renderer
}

var Camera = donburi.NewComponentType[CameraData]()
