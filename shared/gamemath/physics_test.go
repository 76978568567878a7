package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestClampFrameDelta(t *testing.T) {
	assert.Equal(t, 0.0, ClampFrameDelta(math.NaN(), 0.05))
	assert.Equal(t, 0.0, ClampFrameDelta(-1, 0.05))
	assert.Equal(t, 0.02, ClampFrameDelta(0.02, 0.05))
	assert.Equal(t, 0.05, ClampFrameDelta(3, 0.05))
	assert.Equal(t, 0.05, ClampFrameDelta(math.Inf(1), 0.05))
}

func TestSubSteps(t *testing.T) {
	cases := []struct {
		dt    float64
		steps int
	}{
		{0, 0},
		{0.008, 1},
		{0.016, 1},
		{1.0 / 60, 2},
		{0.05, 4},
	}
	for _, c := range cases {
		n, step := SubSteps(c.dt, 0.016)
		assert.Equal(t, c.steps, n, "dt %v", c.dt)
		if n > 0 {
			assert.LessOrEqual(t, step, 0.016+1e-12)
			assert.InDelta(t, c.dt, step*float64(n), 1e-12)
		}
	}
}

func TestSmoothing(t *testing.T) {
	assert.Equal(t, 0.0, Smoothing(5, 0))
	assert.InDelta(t, 0.08, Smoothing(5, 1.0/60), 0.001)
	assert.Less(t, Smoothing(5, 0.5), 1.0)
	assert.LessOrEqual(t, Smoothing(5, 10), 1.0, "long frames saturate")
	assert.InDelta(t, 1.0, Smoothing(5, 10), 1e-12)
}

func TestRotateXZ(t *testing.T) {
	x, z := RotateXZ(0, -1, 0)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, -1, z, 1e-12)

	x, z = RotateXZ(0, -1, -math.Pi/2)
	assert.InDelta(t, -1, x, 1e-12)
	assert.InDelta(t, 0, z, 1e-12)
}

func TestVecHelpers(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, Vec3([3]float64{1, 2, 3}))
	assert.Equal(t, mgl64.Vec3{3, 0.25, 3}, HalfExtents([3]float64{6, 0.5, 6}))
	assert.Equal(t, 5.0, HorizontalLen(mgl64.Vec3{3, 100, 4}))
	assert.Equal(t, mgl64.Vec3{5, 0, 0}, Lerp(mgl64.Vec3{}, mgl64.Vec3{10, 0, 0}, 0.5))
	assert.Equal(t, 2.0, ClampSpeed(5, 2))
	assert.Equal(t, -2.0, ClampSpeed(-5, 2))
}
