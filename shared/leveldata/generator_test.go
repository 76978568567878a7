package leveldata

import (
	"bytes"
	"math"
	"testing"

	"github.com/automoto/towerclimb/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, seed int64, levels int) []Platform {
	t.Helper()
	return NewGenerator(config.DefaultTower(), seed).Generate(levels)
}

func countKind(platforms []Platform, kind Kind) int {
	n := 0
	for _, p := range platforms {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func TestGenerateSingleSpawnAndVictory(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		platforms := generate(t, seed, 50)
		assert.Equal(t, 1, countKind(platforms, KindSpawn), "seed %d", seed)
		assert.Equal(t, 1, countKind(platforms, KindVictory), "seed %d", seed)
		assert.Equal(t, KindSpawn, platforms[0].Kind)
		assert.Equal(t, KindVictory, platforms[len(platforms)-1].Kind)
	}
}

func TestGenerateZeroLevels(t *testing.T) {
	platforms := generate(t, 7, 0)
	require.Len(t, platforms, 2)
	assert.Equal(t, KindSpawn, platforms[0].Kind)
	assert.Equal(t, KindVictory, platforms[1].Kind)
	assert.Greater(t, platforms[1].Position.Y(), platforms[0].Position.Y())
}

func TestGenerateMonotonicHeightRamp(t *testing.T) {
	platforms := generate(t, 3, 50)

	var heights []float64
	for _, p := range platforms {
		if p.Kind == KindNormal {
			require.Equal(t, len(heights), p.Level, "normal platforms come in level order")
			heights = append(heights, p.Position.Y())
		}
	}
	require.Len(t, heights, 50)
	for i := 1; i < len(heights); i++ {
		assert.Less(t, heights[i-1], heights[i], "level %d", i)
	}
	assert.InDelta(t, 1.5, heights[0], 1e-9)
	assert.InDelta(t, 1.5+49*0.8, heights[49], 1e-9)
}

func TestGenerateCheckpointStride(t *testing.T) {
	platforms := generate(t, 11, 50)

	var levels []int
	for _, p := range platforms {
		if p.Kind != KindCheckpoint {
			continue
		}
		levels = append(levels, p.Level)
		want := 1.5 + float64(p.Level)*0.8 + 1
		assert.InDelta(t, want, p.Position.Y(), 1e-9, "checkpoint stands on its level")
	}
	assert.Equal(t, []int{8, 16, 24, 32, 40, 48}, levels)
}

func TestGenerateBridgesAtMidpoints(t *testing.T) {
	g := NewGenerator(config.DefaultTower(), 5)
	platforms := g.Generate(50)

	bridges := 0
	for _, p := range platforms {
		if p.Kind != KindBridge {
			continue
		}
		bridges++
		require.Equal(t, 1, p.Level%4)
		want := g.LevelCenter(p.Level - 1).Add(g.LevelCenter(p.Level)).Mul(0.5)
		assert.True(t, p.Position.ApproxEqualThreshold(want, 1e-9), "bridge %d at %v, want %v", p.Level, p.Position, want)
	}
	assert.Equal(t, 13, bridges) // 1, 5, ..., 49
}

func TestGenerateSpecialsGated(t *testing.T) {
	specials := map[Kind]bool{KindJumpPad: true, KindSpeedPad: true, KindMoving: true, KindSpinner: true, KindHazard: true}

	for seed := int64(1); seed <= 50; seed++ {
		perLevel := map[int]int{}
		for _, p := range generate(t, seed, 50) {
			if !specials[p.Kind] {
				continue
			}
			perLevel[p.Level]++
			assert.Greater(t, p.Level, 5, "no specials on the first levels")

			switch p.Kind {
			case KindJumpPad:
				assert.Equal(t, 0, p.Level%6)
			case KindSpeedPad:
				assert.Greater(t, p.Level, 10)
				assert.Equal(t, 0, p.Level%7)
			case KindMoving:
				assert.Greater(t, p.Level, 20)
				assert.Equal(t, 0, p.Level%10)
			case KindSpinner:
				assert.Greater(t, p.Level, 15)
				assert.Equal(t, 3, p.Level%8)
			case KindHazard:
				assert.Greater(t, p.Level, 25)
				assert.Equal(t, 0, p.Level%12)
			}
		}
		for level, n := range perLevel {
			assert.Equal(t, 1, n, "seed %d level %d", seed, level)
		}
	}
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	assert.Equal(t, generate(t, 42, 50), generate(t, 42, 50))
}

func TestFootprintBands(t *testing.T) {
	g := NewGenerator(config.DefaultTower(), 1)
	tests := []struct {
		height float64
		want   float64
	}{
		{1.5, 3},
		{9.9, 3},
		{10, 2.5},
		{19.9, 2.5},
		{25, 2},
		{30, 1.8},
		{math.MaxFloat64, 1.8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.FootprintWidth(tt.height), "height %v", tt.height)
	}
}

func TestTowerInHeightRange(t *testing.T) {
	tower := NewTower(config.DefaultTower(), 9)

	var got []int
	tower.InHeightRange(5, 7, func(id int) bool {
		got = append(got, id)
		return true
	})
	require.NotEmpty(t, got)
	prev := math.Inf(-1)
	for _, id := range got {
		y := tower.Platforms[id].Position.Y()
		assert.GreaterOrEqual(t, y, 5.0)
		assert.LessOrEqual(t, y, 7.0)
		assert.GreaterOrEqual(t, y, prev)
		prev = y
	}

	calls := 0
	tower.InHeightRange(-100, 100, func(int) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls, "returning false stops the scan")
}

func TestTowerWriteYAML(t *testing.T) {
	tower := FromPlatforms(config.DefaultTower(), generate(t, 1, 2))

	var buf bytes.Buffer
	require.NoError(t, tower.WriteYAML(&buf))
	out := buf.String()
	assert.Contains(t, out, "kind: spawn")
	assert.Contains(t, out, "kind: victory")
	assert.Contains(t, out, "kind: bridge")
}
