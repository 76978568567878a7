// Package simulation holds the per-frame movement, collision, checkpoint and
// camera logic. Every function takes its state explicitly; nothing here owns
// globals, so the ECS systems and the tests drive the same code.
package simulation

import (
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// NoSupport is the SupportID of an airborne avatar.
const NoSupport = -1

// AvatarState is the player's body. Only the stepper and the checkpoint
// tracker write it.
type AvatarState struct {
	Position   mgl64.Vec3
	Velocity   mgl64.Vec3
	Grounded   bool
	Facing     float64 // Radians, atan2(vx, vz)
	SpeedBoost float64 // Seconds of speed pad boost left
	SupportID  int     // Platform under the feet, NoSupport when airborne
}

// NewAvatar places an avatar at the configured spawn position.
func NewAvatar(cfg config.AvatarConfig) AvatarState {
	return AvatarState{
		Position:  gamemath.Vec3(cfg.SpawnPosition),
		SupportID: NoSupport,
	}
}

// Bottom is the height of the avatar's feet.
func (a AvatarState) Bottom(cfg config.AvatarConfig) float64 {
	return a.Position.Y() - cfg.HalfHeight
}

// InputState is one polled snapshot of the controls.
type InputState struct {
	Forward, Back, Left, Right bool
	Jump                       bool

	RotateLeft, RotateRight bool
	RotateUp, RotateDown    bool

	PointerLocked  bool
	PointerDX      float64
	PointerDY      float64
	ToggleDebug    bool
	ReleasePointer bool
}

// Set presses the control bound to action.
func (in *InputState) Set(action config.ActionID) {
	switch action {
	case config.ActionMoveForward:
		in.Forward = true
	case config.ActionMoveBack:
		in.Back = true
	case config.ActionMoveLeft:
		in.Left = true
	case config.ActionMoveRight:
		in.Right = true
	case config.ActionJump:
		in.Jump = true
	case config.ActionRotateLeft:
		in.RotateLeft = true
	case config.ActionRotateRight:
		in.RotateRight = true
	case config.ActionRotateUp:
		in.RotateUp = true
	case config.ActionRotateDown:
		in.RotateDown = true
	case config.ActionReleasePointer:
		in.ReleasePointer = true
	case config.ActionToggleDebug:
		in.ToggleDebug = true
	}
}

// MoveVector returns the normalized planar input (x strafe, z toward camera).
func (in InputState) MoveVector() (x, z float64, moving bool) {
	if in.Forward {
		z--
	}
	if in.Back {
		z++
	}
	if in.Left {
		x--
	}
	if in.Right {
		x++
	}
	v := mgl64.Vec2{x, z}
	if v.Len() == 0 {
		return 0, 0, false
	}
	v = v.Normalize()
	return v.X(), v.Y(), true
}

// Listener receives the core's outward notifications.
type Listener interface {
	// OnHeightChange is called once per frame after physics resolves.
	OnHeightChange(height float64)
	// OnCheckpoint is called once per newly reached checkpoint.
	OnCheckpoint()
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	HeightChange func(height float64)
	Checkpoint   func()
}

func (l ListenerFuncs) OnHeightChange(height float64) {
	if l.HeightChange != nil {
		l.HeightChange(height)
	}
}

func (l ListenerFuncs) OnCheckpoint() {
	if l.Checkpoint != nil {
		l.Checkpoint()
	}
}

// Listeners fans notifications out in order.
type Listeners []Listener

func (ls Listeners) OnHeightChange(height float64) {
	for _, l := range ls {
		l.OnHeightChange(height)
	}
}

func (ls Listeners) OnCheckpoint() {
	for _, l := range ls {
		l.OnCheckpoint()
	}
}
