package factory

import (
	"time"

	"github.com/automoto/towerclimb/archetypes"
	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/leveldata"
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/yohamta/donburi"
)

// CreateTower generates a layout and registers its trigger volumes.
// A zero seed draws one from the clock; the seed used is kept on the entry.
func CreateTower(w donburi.World, seed int64) *donburi.Entry {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tower := leveldata.NewTower(config.Tower, seed)

	entry := archetypes.Tower.Spawn(w)
	components.Tower.SetValue(entry, components.TowerData{
		Tower:    tower,
		Triggers: simulation.NewTriggerSpace(tower, config.Avatar, config.Physics),
		Seed:     seed,
	})
	return entry
}
