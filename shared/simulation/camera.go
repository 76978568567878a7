package simulation

import (
	"math"

	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// CameraState is the orbit camera. Keyboard and pointer headings are kept
// apart; pointer lock picks which one is active.
type CameraState struct {
	HorizontalAngle float64
	VerticalAngle   float64
	PointerYaw      float64
	PointerPitch    float64
	Distance        float64
	Height          float64
	PointerLocked   bool

	Position    mgl64.Vec3 // Smoothed eye
	Initialized bool
}

// Transform is what the renderer needs to place the camera.
type Transform struct {
	Eye    mgl64.Vec3
	LookAt mgl64.Vec3
}

// NewCameraState returns a camera at the configured orbit.
func NewCameraState(cfg config.CameraConfig) CameraState {
	return CameraState{Distance: cfg.Distance, Height: cfg.Height}
}

// Heading is the active yaw, used to rotate movement input.
func (c CameraState) Heading() float64 {
	if c.PointerLocked {
		return c.PointerYaw
	}
	return c.HorizontalAngle
}

// Pitch is the active vertical angle.
func (c CameraState) Pitch() float64 {
	if c.PointerLocked {
		return c.PointerPitch
	}
	return c.VerticalAngle
}

// CameraRig turns input and the avatar position into a smoothed transform.
type CameraRig struct {
	Config config.CameraConfig
}

// NewCameraRig returns a rig using the global tuning.
func NewCameraRig() CameraRig {
	return CameraRig{Config: config.Camera}
}

// Update applies this frame's heading input to state, then moves the eye
// toward its orbit point around target and returns the transform.
func (r CameraRig) Update(state *CameraState, input InputState, target mgl64.Vec3, dt float64) Transform {
	cfg := r.Config
	state.PointerLocked = input.PointerLocked

	if state.PointerLocked {
		state.PointerYaw += input.PointerDX * cfg.PointerSensitivity
		state.PointerPitch = gamemath.ClampFloat(state.PointerPitch+input.PointerDY*cfg.PointerSensitivity, -cfg.MaxPitch, cfg.MaxPitch)
	} else {
		if input.RotateLeft {
			state.HorizontalAngle += cfg.KeyRotateSpeed
		}
		if input.RotateRight {
			state.HorizontalAngle -= cfg.KeyRotateSpeed
		}
		if input.RotateUp {
			state.VerticalAngle = math.Min(cfg.MaxPitch, state.VerticalAngle+cfg.KeyRotateSpeed)
		}
		if input.RotateDown {
			state.VerticalAngle = math.Max(-cfg.MaxPitch, state.VerticalAngle-cfg.KeyRotateSpeed)
		}
	}

	goal := r.Orbit(*state, target)
	if !state.Initialized {
		state.Position = goal
		state.Initialized = true
	} else {
		state.Position = gamemath.Lerp(state.Position, goal, gamemath.Smoothing(cfg.FollowRate, dt))
	}

	return Transform{
		Eye:    state.Position,
		LookAt: target.Add(mgl64.Vec3{0, cfg.LookAtLift, 0}),
	}
}

// Orbit is the unsmoothed eye position for state around target.
func (r CameraRig) Orbit(state CameraState, target mgl64.Vec3) mgl64.Vec3 {
	yaw := state.Heading()
	sin, cos := math.Sincos(yaw)
	return target.Add(mgl64.Vec3{
		sin * state.Distance,
		state.Height + state.Pitch()*r.Config.PitchLift,
		cos * state.Distance,
	})
}

// Snap places the eye on its orbit point immediately, used after a respawn.
func (r CameraRig) Snap(state *CameraState, target mgl64.Vec3) {
	state.Position = r.Orbit(*state, target)
	state.Initialized = true
}
