// Package render draws the tower scene. It reads the world and never
// writes simulation state.
package render

import "github.com/yohamta/donburi/ecs"

const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)
