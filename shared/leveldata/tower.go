package leveldata

import (
	"sort"

	"github.com/automoto/towerclimb/config"
)

// Tower is a generated layout plus a height-sorted index for range scans.
// It is read-only once built.
type Tower struct {
	Config    config.TowerConfig
	Platforms []Platform
	byHeight  []int
}

// NewTower generates cfg.TotalLevels levels with the given seed.
func NewTower(cfg config.TowerConfig, seed int64) *Tower {
	return FromPlatforms(cfg, NewGenerator(cfg, seed).Generate(cfg.TotalLevels))
}

// FromPlatforms indexes an existing layout.
func FromPlatforms(cfg config.TowerConfig, platforms []Platform) *Tower {
	t := &Tower{
		Config:    cfg,
		Platforms: platforms,
		byHeight:  make([]int, len(platforms)),
	}
	for i := range platforms {
		t.byHeight[i] = i
	}
	sort.SliceStable(t.byHeight, func(a, b int) bool {
		return platforms[t.byHeight[a]].Position.Y() < platforms[t.byHeight[b]].Position.Y()
	})
	return t
}

// InHeightRange calls fn with the id of every platform whose center height lies
// in [lo, hi], in ascending height order. Returning false stops the scan.
func (t *Tower) InHeightRange(lo, hi float64, fn func(id int) bool) {
	start := sort.Search(len(t.byHeight), func(i int) bool {
		return t.Platforms[t.byHeight[i]].Position.Y() >= lo
	})
	for _, id := range t.byHeight[start:] {
		if t.Platforms[id].Position.Y() > hi {
			return
		}
		if !fn(id) {
			return
		}
	}
}

// Spawn returns the spawn platform.
func (t *Tower) Spawn() Platform {
	p, _ := t.First(KindSpawn)
	return p
}

// First returns the first platform of kind in generation order.
func (t *Tower) First(kind Kind) (Platform, bool) {
	for _, p := range t.Platforms {
		if p.Kind == kind {
			return p, true
		}
	}
	return Platform{}, false
}

// Count returns how many platforms have kind.
func (t *Tower) Count(kind Kind) int {
	n := 0
	for _, p := range t.Platforms {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// Top is the highest platform top in the tower.
func (t *Tower) Top() float64 {
	if len(t.byHeight) == 0 {
		return 0
	}
	top := 0.0
	for _, p := range t.Platforms {
		if p.Top() > top {
			top = p.Top()
		}
	}
	return top
}
