package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionRotateLeft
	ActionRotateRight
	ActionRotateUp
	ActionRotateDown
	ActionReleasePointer
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:           "none",
	ActionMoveForward:    "forward",
	ActionMoveBack:       "back",
	ActionMoveLeft:       "left",
	ActionMoveRight:      "right",
	ActionJump:           "jump",
	ActionRotateLeft:     "rotate_left",
	ActionRotateRight:    "rotate_right",
	ActionRotateUp:       "rotate_up",
	ActionRotateDown:     "rotate_down",
	ActionReleasePointer: "release_pointer",
	ActionToggleDebug:    "toggle_debug",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps a script or config name back to its action.
func ParseAction(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name && ActionID(id) != ActionNone {
			return ActionID(id), true
		}
	}
	return ActionNone, false
}
