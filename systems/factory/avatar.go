package factory

import (
	"github.com/automoto/towerclimb/archetypes"
	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/yohamta/donburi"
)

// CreateAvatar places the avatar on the spawn point with an empty
// checkpoint record.
func CreateAvatar(w donburi.World) *donburi.Entry {
	avatar := archetypes.Avatar.Spawn(w)
	components.Avatar.SetValue(avatar, components.AvatarData{
		State: simulation.NewAvatar(config.Avatar),
	})
	components.Checkpoints.SetValue(avatar, *simulation.NewCheckpointTracker())
	return avatar
}
