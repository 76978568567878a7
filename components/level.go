package components

import (
	"github.com/automoto/towerclimb/shared/leveldata"
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/yohamta/donburi"
)

type TowerData struct {
	Tower    *leveldata.Tower
	Triggers *simulation.TriggerSpace
	Seed     int64 // Seed the layout was generated with
}

var Tower = donburi.NewComponentType[TowerData]()
