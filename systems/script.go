package systems

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/simulation"
)

// ScriptSegment holds one input snapshot for Frames frames.
type ScriptSegment struct {
	Frames int
	Input  simulation.InputState
}

// Script replays input segments in order, then idles.
type Script struct {
	Segments []ScriptSegment
}

var _ components.InputSource = (*Script)(nil)

// ParseScript reads whitespace separated segments of the form
// action[+action...]*frames, e.g. "idle*30 forward+jump*10".
// "idle" holds nothing; a missing count means one frame.
func ParseScript(src string) (*Script, error) {
	s := &Script{}
	for _, field := range strings.Fields(src) {
		names, count, hasCount := strings.Cut(field, "*")
		frames := 1
		if hasCount {
			n, err := strconv.Atoi(count)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid frame count in %q", field)
			}
			frames = n
		}

		var in simulation.InputState
		for _, name := range strings.Split(names, "+") {
			if name == "idle" {
				continue
			}
			action, ok := config.ParseAction(name)
			if !ok {
				return nil, fmt.Errorf("unknown action %q in %q", name, field)
			}
			in.Set(action)
		}
		s.Segments = append(s.Segments, ScriptSegment{Frames: frames, Input: in})
	}
	return s, nil
}

// Frames is the script's total length.
func (s *Script) Frames() int {
	n := 0
	for _, seg := range s.Segments {
		n += seg.Frames
	}
	return n
}

// Poll returns the snapshot scheduled for frame.
func (s *Script) Poll(frame int) simulation.InputState {
	if frame < 0 {
		return simulation.InputState{}
	}
	for _, seg := range s.Segments {
		if frame < seg.Frames {
			return seg.Input
		}
		frame -= seg.Frames
	}
	return simulation.InputState{}
}
