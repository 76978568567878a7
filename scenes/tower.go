package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/towerclimb/systems"
	"github.com/automoto/towerclimb/systems/factory"
	"github.com/automoto/towerclimb/systems/render"
	"github.com/automoto/towerclimb/systems/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TowerScene is a single climb: one generated tower, one avatar.
type TowerScene struct {
	ecs     *ecs.ECS
	seed    int64
	session factory.SessionOptions
	sound   bool
	once    sync.Once
}

// NewTowerScene creates a scene that generates its tower from seed on the
// first update. A zero seed draws one from the clock.
func NewTowerScene(seed int64, session factory.SessionOptions) *TowerScene {
	return &TowerScene{seed: seed, session: session}
}

// WithSound plays queued effects after each simulated frame.
func (ts *TowerScene) WithSound() *TowerScene {
	ts.sound = true
	return ts
}

func (ts *TowerScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TowerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

// Close saves any unsaved records.
func (ts *TowerScene) Close() {
	if ts.ecs == nil {
		return
	}
	systems.FlushRecords(ts.ecs.World)
}

func (ts *TowerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Same order as the headless runner
	for _, s := range systems.Simulation {
		e.AddSystem(adapt(s))
	}
	if ts.sound {
		e.AddSystem(sound.Update)
	}

	e.AddRenderer(render.LayerWorld, render.DrawSky)
	e.AddRenderer(render.LayerWorld, render.DrawTower)
	e.AddRenderer(render.LayerHUD, render.DrawHUD)
	e.AddRenderer(render.LayerHUD, render.DrawBanner)
	e.AddRenderer(render.LayerHUD, render.DrawDebug)

	ts.ecs = e
	factory.CreateWorld(e.World, ts.seed, ts.session)
}

func adapt(s systems.System) ecs.System {
	return func(e *ecs.ECS) {
		s(e.World)
	}
}
