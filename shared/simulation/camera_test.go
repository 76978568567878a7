package simulation

import (
	"testing"

	"github.com/automoto/towerclimb/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestCameraKeyboardRotation(t *testing.T) {
	rig := CameraRig{Config: config.DefaultCamera()}
	state := NewCameraState(rig.Config)

	rig.Update(&state, InputState{RotateLeft: true}, mgl64.Vec3{}, 1.0/60)
	assert.InDelta(t, 0.02, state.HorizontalAngle, 1e-12)

	for i := 0; i < 200; i++ {
		rig.Update(&state, InputState{RotateUp: true}, mgl64.Vec3{}, 1.0/60)
	}
	assert.Equal(t, 1.0, state.VerticalAngle)

	for i := 0; i < 200; i++ {
		rig.Update(&state, InputState{RotateDown: true}, mgl64.Vec3{}, 1.0/60)
	}
	assert.Equal(t, -1.0, state.VerticalAngle)
}

func TestCameraPointerLockOwnsHeading(t *testing.T) {
	rig := CameraRig{Config: config.DefaultCamera()}
	state := NewCameraState(rig.Config)
	state.HorizontalAngle = 0.5

	rig.Update(&state, InputState{PointerLocked: true, PointerDX: 100, PointerDY: 2000, RotateLeft: true}, mgl64.Vec3{}, 1.0/60)
	assert.InDelta(t, 0.2, state.PointerYaw, 1e-12)
	assert.Equal(t, 1.0, state.PointerPitch, "pitch clamps")
	assert.Equal(t, 0.5, state.HorizontalAngle, "keys are ignored while locked")
	assert.InDelta(t, 0.2, state.Heading(), 1e-12)

	rig.Update(&state, InputState{}, mgl64.Vec3{}, 1.0/60)
	assert.Equal(t, 0.5, state.Heading(), "unlocking returns to the keyboard heading")
}

func TestCameraOrbitAndLookAt(t *testing.T) {
	rig := CameraRig{Config: config.DefaultCamera()}
	state := NewCameraState(rig.Config)
	target := mgl64.Vec3{1, 2, 3}

	tf := rig.Update(&state, InputState{}, target, 1.0/60)
	assert.True(t, tf.Eye.ApproxEqual(mgl64.Vec3{1, 8, 11}), "eye %v", tf.Eye)
	assert.Equal(t, mgl64.Vec3{1, 4, 3}, tf.LookAt)
}

func TestCameraSmoothing(t *testing.T) {
	rig := CameraRig{Config: config.DefaultCamera()}
	state := NewCameraState(rig.Config)
	rig.Update(&state, InputState{}, mgl64.Vec3{}, 1.0/60)
	start := state.Position

	target := mgl64.Vec3{10, 0, 0}
	goal := rig.Orbit(state, target)
	tf := rig.Update(&state, InputState{}, target, 1.0/60)

	moved := tf.Eye.Sub(start).Len() / goal.Sub(start).Len()
	assert.InDelta(t, 0.08, moved, 0.005, "about 8%% per frame at 60 fps")

	frozen := state.Position
	rig.Update(&state, InputState{}, target, 0)
	assert.Equal(t, frozen, state.Position, "zero delta does not move the eye")

	rig.Snap(&state, target)
	assert.Equal(t, goal, state.Position)
}
