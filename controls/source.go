package controls

import (
	"github.com/automoto/towerclimb/components"
	cfg "github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Source polls the keyboard, mouse and gamepads. Clicking the window
// captures the cursor; Escape releases it.
type Source struct {
	lastX, lastY int
	tracking     bool
}

var _ components.InputSource = (*Source)(nil)

// NewSource returns a source with the cursor free.
func NewSource() *Source {
	return &Source{}
}

// Poll implements components.InputSource.
func (s *Source) Poll(int) simulation.InputState {
	var in simulation.InputState

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for actionID, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Set(actionID)
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Set(actionID)
				}
			}
		}
	}
	s.pollSticks(&in)
	s.pollPointer(&in)
	return in
}

// pollSticks merges the left stick into movement and the right stick into
// the pointer delta.
func (s *Source) pollSticks(in *simulation.InputState) {
	deadzone := Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		lx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if lx < -deadzone {
			in.Set(cfg.ActionMoveLeft)
		}
		if lx > deadzone {
			in.Set(cfg.ActionMoveRight)
		}
		if ly < -deadzone {
			in.Set(cfg.ActionMoveForward)
		}
		if ly > deadzone {
			in.Set(cfg.ActionMoveBack)
		}

		rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		if rx < -deadzone {
			in.Set(cfg.ActionRotateLeft)
		}
		if rx > deadzone {
			in.Set(cfg.ActionRotateRight)
		}
	}
}

func (s *Source) pollPointer(in *simulation.InputState) {
	captured := ebiten.CursorMode() == ebiten.CursorModeCaptured

	switch {
	case in.ReleasePointer && captured:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		captured = false
	case !captured && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		captured = true
		s.tracking = false
	}

	in.PointerLocked = captured
	if !captured {
		s.tracking = false
		return
	}

	x, y := ebiten.CursorPosition()
	if s.tracking {
		// Dragging right turns the view right: the yaw goes down.
		in.PointerDX = -float64(x - s.lastX)
		in.PointerDY = float64(y - s.lastY)
	}
	s.lastX, s.lastY = x, y
	s.tracking = true
}
