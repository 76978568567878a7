package tags

import "github.com/yohamta/donburi"

var (
	Avatar  = donburi.NewTag().SetName("Avatar")
	Tower   = donburi.NewTag().SetName("Tower")
	Camera  = donburi.NewTag().SetName("Camera")
	Session = donburi.NewTag().SetName("Session")
)
