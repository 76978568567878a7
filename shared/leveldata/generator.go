package leveldata

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Generator lays out the spiral. Rand drives optional specials only; the
// spiral itself is a pure function of the level index.
type Generator struct {
	Config config.TowerConfig
	Rand   *rand.Rand
}

// NewGenerator returns a generator seeded with seed. A zero seed draws one from the clock.
func NewGenerator(cfg config.TowerConfig, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		Config: cfg,
		Rand:   rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Generate produces the ordered platform list for levelCount levels:
// Spawn first, then per level its platform, checkpoint, special and bridge,
// then Victory.
func (g *Generator) Generate(levelCount int) []Platform {
	cfg := g.Config
	if levelCount < 0 {
		levelCount = 0
	}
	if g.Rand == nil {
		g.Rand = NewGenerator(cfg, 0).Rand
	}

	platforms := make([]Platform, 0, levelCount*2+2)
	platforms = append(platforms, Platform{
		Position:    mgl64.Vec3{},
		HalfExtents: gamemath.HalfExtents(cfg.SpawnSize),
		Kind:        KindSpawn,
		Level:       NoLevel,
	})

	var prev mgl64.Vec3
	for level := 0; level < levelCount; level++ {
		center := g.LevelCenter(level)
		width := g.FootprintWidth(center.Y())

		platforms = append(platforms, Platform{
			Position:    center,
			HalfExtents: mgl64.Vec3{width / 2, cfg.PlatformThickness / 2, width / 2},
			Kind:        KindNormal,
			Level:       level,
		})

		if g.IsCheckpointLevel(level) {
			platforms = append(platforms, Platform{
				Position:    center.Add(gamemath.Vec3(cfg.Specials.CheckpointOffset)),
				HalfExtents: gamemath.HalfExtents(cfg.Specials.CheckpointSize),
				Kind:        KindCheckpoint,
				Level:       level,
			})
		}

		if special, ok := g.special(level, center); ok {
			platforms = append(platforms, special)
		}

		// Bridges fill the angular gap so every level stays reachable.
		if level%4 == 1 {
			mid := prev.Add(center).Mul(0.5)
			platforms = append(platforms, Platform{
				Position:    mid,
				HalfExtents: gamemath.HalfExtents(cfg.BridgeSize),
				Kind:        KindBridge,
				Level:       level,
			})
		}
		prev = center
	}

	platforms = append(platforms, Platform{
		Position:    mgl64.Vec3{0, cfg.BaseHeight + float64(levelCount)*cfg.HeightIncrement + cfg.VictoryRise, 0},
		HalfExtents: gamemath.HalfExtents(cfg.VictorySize),
		Kind:        KindVictory,
		Level:       NoLevel,
	})
	return platforms
}

// LevelCenter is the center of the level's normal platform.
func (g *Generator) LevelCenter(level int) mgl64.Vec3 {
	cfg := g.Config
	angle := float64(level) / float64(cfg.PlatformsPerRotation) * 2 * math.Pi
	height := cfg.BaseHeight + float64(level)*cfg.HeightIncrement
	radius := cfg.BaseRadius + math.Sin(float64(level)*cfg.WobbleFrequency)*cfg.RadiusWobble
	sin, cos := math.Sincos(angle)
	return mgl64.Vec3{cos * radius, height, sin * radius}
}

// FootprintWidth picks the band for a platform at height.
func (g *Generator) FootprintWidth(height float64) float64 {
	bands := g.Config.Bands
	for _, b := range bands {
		if height < b.MaxHeight {
			return b.Width
		}
	}
	return bands[len(bands)-1].Width
}

// IsCheckpointLevel reports whether level carries a checkpoint.
func (g *Generator) IsCheckpointLevel(level int) bool {
	return level > 0 && level%g.Config.CheckpointStride == 0
}

// special rolls once and returns the first eligible optional platform.
func (g *Generator) special(level int, center mgl64.Vec3) (Platform, bool) {
	roll := g.Rand.Float64()
	rules := []struct {
		kind Kind
		rule config.SpecialRule
	}{
		{KindJumpPad, g.Config.Specials.JumpPad},
		{KindSpeedPad, g.Config.Specials.SpeedPad},
		{KindMoving, g.Config.Specials.Moving},
		{KindSpinner, g.Config.Specials.Spinner},
		{KindHazard, g.Config.Specials.Hazard},
	}
	for _, r := range rules {
		if !eligible(r.rule, level, roll) {
			continue
		}
		return Platform{
			Position:    center.Add(gamemath.Vec3(r.rule.Offset)),
			HalfExtents: gamemath.HalfExtents(r.rule.Size),
			Kind:        r.kind,
			Level:       level,
		}, true
	}
	return Platform{}, false
}

func eligible(rule config.SpecialRule, level int, roll float64) bool {
	if rule.Every <= 0 || level <= rule.After {
		return false
	}
	return level%rule.Every == rule.Remainder && roll < rule.Chance
}
