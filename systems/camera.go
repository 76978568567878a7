package systems

import (
	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/automoto/towerclimb/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera rotates the rig from input and trails the avatar.
func UpdateCamera(w donburi.World) {
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	cameraEntry, ok := tags.Camera.First(w)
	if !ok {
		return
	}
	avatarEntry, ok := tags.Avatar.First(w)
	if !ok {
		return // no avatar, keep the last transform
	}

	camera := components.Camera.Get(cameraEntry)
	input := components.Input.Get(session)
	clock := components.Clock.Get(session)
	target := components.Avatar.Get(avatarEntry).State.Position

	camera.Transform = simulation.NewCameraRig().Update(&camera.State, input.Current, target, clock.Delta)
}
