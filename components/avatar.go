package components

import (
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/yohamta/donburi"
)

type AvatarData struct {
	State    simulation.AvatarState
	Respawns int // Falls and hazard hits this session

	// Hazards the avatar was respawned inside. They are ignored until the
	// avatar stops touching them.
	Immune map[int]struct{}
}

var Avatar = donburi.NewComponentType[AvatarData]()
