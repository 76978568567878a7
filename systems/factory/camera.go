package factory

import (
	"github.com/automoto/towerclimb/archetypes"
	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/yohamta/donburi"
)

// CreateCamera adds the orbit camera. Its first update snaps onto the avatar.
func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		State: simulation.NewCameraState(config.Camera),
	})
	return camera
}
