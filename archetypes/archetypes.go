package archetypes

import (
	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/tags"
	"github.com/yohamta/donburi"
)

var (
	Avatar = newArchetype(
		tags.Avatar,
		components.Avatar,
		components.Checkpoints,
	)
	Tower = newArchetype(
		tags.Tower,
		components.Tower,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	// Session holds the frame-level singletons.
	Session = newArchetype(
		tags.Session,
		components.Clock,
		components.Input,
		components.Progress,
		components.Listener,
		components.Banner,
		components.Records,
		components.Settings,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
