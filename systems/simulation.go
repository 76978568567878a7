package systems

import (
	"context"

	"github.com/yohamta/donburi"
)

// System is one step of a frame.
type System func(w donburi.World)

// Simulation lists the frame's systems in run order. Each reads what the
// ones before it wrote this frame.
var Simulation = []System{
	UpdateClock,
	UpdateInput,
	UpdatePhysics,
	UpdateTriggers,
	UpdateCheckpoints,
	UpdateCamera,
	UpdateProgress,
	UpdateBanner,
}

// RunFrame advances the world by one frame.
func RunFrame(w donburi.World) {
	for _, s := range Simulation {
		s(w)
	}
}

// RunFrames advances w by up to frames frames, checking ctx between frames.
// It returns the number of frames run.
func RunFrames(ctx context.Context, w donburi.World, frames int) (int, error) {
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		RunFrame(w)
	}
	return frames, nil
}
