package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestProjectorCenterAndDepth(t *testing.T) {
	p := NewProjector(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, math.Pi/3, 800, 600)

	x, y, depth, ok := p.Project(mgl64.Vec3{})
	assert.True(t, ok)
	assert.InDelta(t, 400, x, 1e-6)
	assert.InDelta(t, 300, y, 1e-6)
	assert.InDelta(t, 10, depth, 1e-6)

	x, y, _, ok = p.Project(mgl64.Vec3{1, 1, 0})
	assert.True(t, ok)
	assert.Greater(t, x, 400.0, "right of the view axis")
	assert.Less(t, y, 300.0, "up is toward the top of the screen")

	_, _, _, ok = p.Project(mgl64.Vec3{0, 0, 20})
	assert.False(t, ok, "behind the eye")
}

func TestBoxFacesFacing(t *testing.T) {
	faces := BoxFaces(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0.5, 1})
	eye := mgl64.Vec3{0, 10, 10}

	assert.Equal(t, mgl64.Vec3{0, 0.5, 0}, faces[0].Center())
	assert.True(t, faces[0].Facing(eye), "top")
	assert.False(t, faces[1].Facing(eye), "bottom")
	assert.True(t, faces[4].Facing(eye), "+z side")
	assert.False(t, faces[5].Facing(eye), "-z side")

	for _, f := range faces {
		for _, c := range f.Corners {
			assert.InDelta(t, 1, math.Abs(c.X()), 1e-12)
			assert.InDelta(t, 0.5, math.Abs(c.Y()), 1e-12)
		}
	}
}
