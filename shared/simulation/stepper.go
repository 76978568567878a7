package simulation

import (
	"math"

	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/gamemath"
	"github.com/automoto/towerclimb/shared/leveldata"
)

// Stepper integrates the avatar with fixed sub-steps.
type Stepper struct {
	Physics  config.PhysicsConfig
	Resolver Resolver
}

// NewStepper returns a stepper using the global tuning.
func NewStepper() Stepper {
	return Stepper{Physics: config.Physics, Resolver: NewResolver()}
}

// Step advances the avatar by one rendered frame of length dt. heading is the
// active camera yaw. dt is clamped to MaxFrameDelta and split into
// ceil(dt/FixedStep) equal sub-steps; a zero dt leaves the avatar untouched.
func (s Stepper) Step(avatar AvatarState, input InputState, heading float64, tower *leveldata.Tower, dt float64) AvatarState {
	dt = gamemath.ClampFrameDelta(dt, s.Physics.MaxFrameDelta)
	steps, h := gamemath.SubSteps(dt, s.Physics.FixedStep)
	for i := 0; i < steps; i++ {
		avatar = s.subStep(avatar, input, heading, tower, h)
	}
	if avatar.SpeedBoost > 0 {
		avatar.SpeedBoost = math.Max(0, avatar.SpeedBoost-dt)
	}
	return avatar
}

func (s Stepper) subStep(a AvatarState, input InputState, heading float64, tower *leveldata.Tower, h float64) AvatarState {
	a.Velocity[1] = gamemath.ClampSpeed(a.Velocity.Y()+s.Physics.Gravity*h, s.Physics.MaxFallSpeed)

	// Horizontal velocity is set, never accumulated: no input means no slide.
	if x, z, moving := input.MoveVector(); moving {
		speed := s.Physics.MoveSpeed
		if a.SpeedBoost > 0 {
			speed *= s.Physics.SpeedPadMultiplier
		}
		// Rotate by -heading so forward points away from the camera.
		wx, wz := gamemath.RotateXZ(x, z, -heading)
		a.Velocity[0] = wx * speed
		a.Velocity[2] = wz * speed
	} else {
		a.Velocity[0] = 0
		a.Velocity[2] = 0
	}

	if input.Jump && a.Grounded {
		a.Velocity[1] = s.Physics.JumpImpulse
		a.Grounded = false
	}

	candidate := a.Position.Add(a.Velocity.Mul(h))
	if contact, ok := s.Resolver.Resolve(candidate, a.Velocity.Y(), tower); ok {
		candidate = contact.Position
		a.Velocity[1] = math.Max(0, a.Velocity.Y())
		a.Grounded = true
		a.SupportID = contact.PlatformID
	} else {
		a.Grounded = false
		a.SupportID = NoSupport
	}
	a.Position = candidate

	if gamemath.HorizontalLen(a.Velocity) > 0 {
		a.Facing = math.Atan2(a.Velocity.X(), a.Velocity.Z())
	}
	return a
}
