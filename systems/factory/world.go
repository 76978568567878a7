package factory

import "github.com/yohamta/donburi"

// CreateWorld populates w with a freshly generated tower, the avatar on its
// spawn point, the camera and the session.
func CreateWorld(w donburi.World, seed int64, opts SessionOptions) {
	CreateTower(w, seed)
	CreateAvatar(w)
	CreateCamera(w)
	CreateSession(w, opts)
}
