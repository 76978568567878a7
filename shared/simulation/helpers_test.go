package simulation

import (
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
)

func box(kind leveldata.Kind, pos, size mgl64.Vec3) leveldata.Platform {
	return leveldata.Platform{Position: pos, HalfExtents: size.Mul(0.5), Kind: kind, Level: leveldata.NoLevel}
}

func spawnOnly() *leveldata.Tower {
	return leveldata.FromPlatforms(config.DefaultTower(), []leveldata.Platform{
		box(leveldata.KindSpawn, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{6, 0.5, 6}),
	})
}

func testStepper() Stepper {
	return Stepper{
		Physics:  config.DefaultPhysics(),
		Resolver: Resolver{Avatar: config.DefaultAvatar(), Physics: config.DefaultPhysics()},
	}
}

func testTracker() *CheckpointTracker {
	t := &CheckpointTracker{Tower: config.DefaultTower(), Avatar: config.DefaultAvatar()}
	t.Reset()
	return t
}
