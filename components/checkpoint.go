package components

import (
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/yohamta/donburi"
)

// Checkpoints holds the session's tracker. Reset on level load only.
var Checkpoints = donburi.NewComponentType[simulation.CheckpointTracker]()
