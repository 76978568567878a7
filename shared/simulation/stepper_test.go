package simulation

import (
	"math"
	"testing"

	"github.com/automoto/towerclimb/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepSpawnLandingScenario(t *testing.T) {
	s := testStepper()
	tower := spawnOnly()
	avatar := NewAvatar(config.DefaultAvatar())
	require.Equal(t, mgl64.Vec3{0, 1.25, 0}, avatar.Position)

	avatar = s.Step(avatar, InputState{}, 0, tower, 0.016)
	assert.InDelta(t, -0.56, avatar.Velocity.Y(), 1e-9)
	assert.Less(t, avatar.Position.Y(), 1.25)
	assert.Greater(t, avatar.Position.Y(), 1.2)

	for i := 0; i < 60; i++ {
		avatar = s.Step(avatar, InputState{}, 0, tower, 0.016)
	}
	assert.InDelta(t, 0.75, avatar.Position.Y(), 1e-9)
	assert.True(t, avatar.Grounded)
	assert.Equal(t, 0.0, avatar.Velocity.Y())
	assert.Equal(t, 0, avatar.SupportID)
}

func TestStepZeroDeltaIsNoop(t *testing.T) {
	s := testStepper()
	avatar := NewAvatar(config.DefaultAvatar())
	avatar.Velocity = mgl64.Vec3{1, 2, 3}

	assert.Equal(t, avatar, s.Step(avatar, InputState{Forward: true, Jump: true}, 0, spawnOnly(), 0))
	assert.Equal(t, avatar, s.Step(avatar, InputState{}, 0, spawnOnly(), -1))
	assert.Equal(t, avatar, s.Step(avatar, InputState{}, 0, spawnOnly(), math.NaN()))
}

func TestStepClampsLongFrames(t *testing.T) {
	s := testStepper()
	avatar := NewAvatar(config.DefaultAvatar())
	avatar.Position = mgl64.Vec3{20, 30, 20}

	hitch := s.Step(avatar, InputState{}, 0, spawnOnly(), 2.0)
	bounded := s.Step(avatar, InputState{}, 0, spawnOnly(), 0.05)
	assert.Equal(t, bounded, hitch)
	assert.InDelta(t, -35*0.05, hitch.Velocity.Y(), 1e-9)
}

func TestStepJumpIgnoredWhileAirborne(t *testing.T) {
	s := testStepper()
	avatar := NewAvatar(config.DefaultAvatar())
	avatar.Position = mgl64.Vec3{0, 10, 0}
	avatar.Velocity = mgl64.Vec3{0, -3, 0}
	require.False(t, avatar.Grounded)

	withJump := s.Step(avatar, InputState{Jump: true}, 0, spawnOnly(), 0.016)
	without := s.Step(avatar, InputState{}, 0, spawnOnly(), 0.016)
	assert.Equal(t, without.Velocity.Y(), withJump.Velocity.Y())
	assert.Equal(t, without, withJump)
}

func TestStepJumpFromGround(t *testing.T) {
	s := testStepper()
	avatar := AvatarState{Position: mgl64.Vec3{0, 0.75, 0}, Grounded: true}

	avatar = s.Step(avatar, InputState{Jump: true}, 0, spawnOnly(), 0.016)
	assert.False(t, avatar.Grounded)
	assert.InDelta(t, 18, avatar.Velocity.Y(), 1e-9)
	assert.InDelta(t, 0.75+18*0.016, avatar.Position.Y(), 1e-9)
}

func TestStepHorizontalVelocityIsSet(t *testing.T) {
	s := testStepper()
	avatar := AvatarState{Position: mgl64.Vec3{0, 0.75, 0}, Grounded: true}

	avatar = s.Step(avatar, InputState{Forward: true}, 0, spawnOnly(), 0.016)
	assert.InDelta(t, 0, avatar.Velocity.X(), 1e-9)
	assert.InDelta(t, -12, avatar.Velocity.Z(), 1e-9)
	assert.InDelta(t, math.Pi, math.Abs(avatar.Facing), 1e-9)

	again := s.Step(avatar, InputState{Forward: true}, 0, spawnOnly(), 0.016)
	assert.InDelta(t, -12, again.Velocity.Z(), 1e-9, "no accumulation")

	stopped := s.Step(again, InputState{}, 0, spawnOnly(), 0.016)
	assert.Equal(t, 0.0, stopped.Velocity.X())
	assert.Equal(t, 0.0, stopped.Velocity.Z())
	assert.Equal(t, again.Facing, stopped.Facing, "facing holds after stopping")
}

func TestStepDiagonalIsNormalized(t *testing.T) {
	s := testStepper()
	avatar := AvatarState{Position: mgl64.Vec3{0, 0.75, 0}, Grounded: true}

	avatar = s.Step(avatar, InputState{Forward: true, Right: true}, 0, spawnOnly(), 0.016)
	assert.InDelta(t, 12, math.Hypot(avatar.Velocity.X(), avatar.Velocity.Z()), 1e-9)
}

func TestStepForwardFollowsCameraHeading(t *testing.T) {
	s := testStepper()
	avatar := AvatarState{Position: mgl64.Vec3{0, 0.75, 0}, Grounded: true}
	cam := NewCameraState(config.DefaultCamera())
	cam.HorizontalAngle = math.Pi / 2 // Eye sits on +X

	avatar = s.Step(avatar, InputState{Forward: true}, cam.Heading(), spawnOnly(), 0.016)
	assert.InDelta(t, -12, avatar.Velocity.X(), 1e-9, "forward moves away from the camera")
	assert.InDelta(t, 0, avatar.Velocity.Z(), 1e-9)
}

func TestStepSpeedBoost(t *testing.T) {
	s := testStepper()
	avatar := AvatarState{Position: mgl64.Vec3{0, 0.75, 0}, Grounded: true, SpeedBoost: 0.02}

	avatar = s.Step(avatar, InputState{Right: true}, 0, spawnOnly(), 0.016)
	assert.InDelta(t, 18, avatar.Velocity.X(), 1e-9)
	assert.InDelta(t, 0.004, avatar.SpeedBoost, 1e-9)

	avatar = s.Step(avatar, InputState{Right: true}, 0, spawnOnly(), 0.016)
	assert.Equal(t, 0.0, avatar.SpeedBoost)
	avatar = s.Step(avatar, InputState{Right: true}, 0, spawnOnly(), 0.016)
	assert.InDelta(t, 12, avatar.Velocity.X(), 1e-9)
}

func TestStepNoTunneling(t *testing.T) {
	s := testStepper()
	tower := spawnOnly()
	top := tower.Platforms[0].Top()

	for _, dt := range []float64{0.008, 0.016, 0.033, 0.05, 0.25} {
		avatar := AvatarState{Position: mgl64.Vec3{0.5, 45, -0.5}, SupportID: NoSupport}
		landed := false
		for frame := 0; frame < 600 && !landed; frame++ {
			avatar = s.Step(avatar, InputState{}, 0, tower, dt)
			bottom := avatar.Bottom(config.DefaultAvatar())
			require.GreaterOrEqual(t, bottom, top-1e-9, "dt %v frame %d fell through", dt, frame)
			landed = avatar.Grounded
		}
		assert.True(t, landed, "dt %v", dt)
		assert.InDelta(t, top+0.5, avatar.Position.Y(), 1e-9)
	}
}

func TestStepFallSpeedIsCapped(t *testing.T) {
	s := testStepper()
	avatar := AvatarState{Position: mgl64.Vec3{50, 0, 50}, SupportID: NoSupport}

	for i := 0; i < 300; i++ {
		avatar = s.Step(avatar, InputState{}, 0, spawnOnly(), 0.05)
	}
	assert.Equal(t, -s.Physics.MaxFallSpeed, avatar.Velocity.Y())
	assert.False(t, avatar.Grounded)
}
