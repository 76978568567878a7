package simulation

import (
	"testing"

	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triggerTower() *TriggerSpace {
	tower := leveldata.FromPlatforms(config.DefaultTower(), []leveldata.Platform{
		box(leveldata.KindSpawn, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{6, 0.5, 6}),
		box(leveldata.KindJumpPad, mgl64.Vec3{0, 0.35, 0}, mgl64.Vec3{1.5, 0.2, 1.5}),
		box(leveldata.KindHazard, mgl64.Vec3{5, 10, 5}, mgl64.Vec3{1, 0.3, 1}),
		box(leveldata.KindCheckpoint, mgl64.Vec3{5, 11, 5}, mgl64.Vec3{1, 2, 1}),
	})
	return NewTriggerSpace(tower, config.DefaultAvatar(), config.DefaultPhysics())
}

func TestTriggerSpaceSkipsSolids(t *testing.T) {
	ts := triggerTower()
	assert.Len(t, ts.Objects(), 3)
}

func TestTriggerContactOnPad(t *testing.T) {
	ts := triggerTower()
	a := AvatarState{Position: mgl64.Vec3{0.2, 0.75, -0.1}, Grounded: true}

	hits := ts.Contacts(a)
	require.Len(t, hits, 1)
	assert.Equal(t, TriggerHit{PlatformID: 1, Kind: leveldata.KindJumpPad}, hits[0])
}

func TestTriggerPadReach(t *testing.T) {
	ts := triggerTower()

	// Feet 0.2 above the pad top still touch it.
	assert.Len(t, ts.Contacts(AvatarState{Position: mgl64.Vec3{0, 1.15, 0}}), 1)
	assert.Empty(t, ts.Contacts(AvatarState{Position: mgl64.Vec3{0, 1.5, 0}}))
}

func TestTriggerContactsSortedByID(t *testing.T) {
	ts := triggerTower()
	a := AvatarState{Position: mgl64.Vec3{5.3, 10.5, 4.8}, Velocity: mgl64.Vec3{0, -8, 0}}

	hits := ts.Contacts(a)
	require.Len(t, hits, 2)
	assert.Equal(t, leveldata.KindHazard, hits[0].Kind)
	assert.Equal(t, leveldata.KindCheckpoint, hits[1].Kind)
}

func TestTriggerNoContactFarAway(t *testing.T) {
	ts := triggerTower()
	assert.Empty(t, ts.Contacts(AvatarState{Position: mgl64.Vec3{-5, 20, -5}}))
	assert.Empty(t, ts.Contacts(AvatarState{Position: mgl64.Vec3{6.5, 10.5, 5}}), "outside the footprint")
}

func TestTriggerToWorld(t *testing.T) {
	ts := triggerTower()
	for _, obj := range ts.Objects() {
		id := obj.Data.(int)
		p := ts.tower.Platforms[id]
		x, z := ts.ToWorld(obj.X, obj.Y)
		assert.InDelta(t, p.Position.X()-p.HalfExtents.X(), x, 1e-9)
		assert.InDelta(t, p.Position.Z()-p.HalfExtents.Z(), z, 1e-9)
	}
}

func TestSpinnerBarCoversOnlyItsStrip(t *testing.T) {
	tower := leveldata.FromPlatforms(config.DefaultTower(), []leveldata.Platform{
		box(leveldata.KindNormal, mgl64.Vec3{0, 10, 0}, mgl64.Vec3{2.5, 0.5, 2.5}),
		box(leveldata.KindSpinner, mgl64.Vec3{0, 11.5, 0}, mgl64.Vec3{3, 0.3, 0.3}),
	})
	ts := NewTriggerSpace(tower, config.DefaultAvatar(), config.DefaultPhysics())
	standing := func(x, z float64) AvatarState {
		return AvatarState{Position: mgl64.Vec3{x, 10.75, z}, Grounded: true, SupportID: 0}
	}

	assert.Len(t, ts.Contacts(standing(0, 0)), 1, "the bar crosses the centre")
	assert.Len(t, ts.Contacts(standing(1.2, 0.5)), 1)
	assert.Empty(t, ts.Contacts(standing(0, 0.8)), "either side of the bar is safe")
	assert.Empty(t, ts.Contacts(standing(-1, -1)))
}
