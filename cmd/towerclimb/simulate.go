package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/automoto/towerclimb/systems"
	"github.com/automoto/towerclimb/systems/factory"
	"github.com/automoto/towerclimb/tags"
	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

const defaultScript = "idle*30 forward*40 forward+jump*20 rotate_left*30 forward+jump*120 back*20 idle*60"

var (
	flagFrames     int
	flagScript     string
	flagScriptFile string
	flagStep       float64
	flagReport     int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the climb headless with scripted input",
	Long: `Run the simulation without a window. Input comes from a script of
whitespace separated segments, action[+action...]*frames, for example
"idle*30 forward+jump*10 rotate_left*20". Actions: forward, back, left,
right, jump, rotate_left, rotate_right, rotate_up, rotate_down.

Height and checkpoint events are logged as the run progresses.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Frames to simulate")
	simulateCmd.Flags().StringVar(&flagScript, "script", defaultScript, "Input script")
	simulateCmd.Flags().StringVar(&flagScriptFile, "script-file", "", "Read the input script from a file")
	simulateCmd.Flags().Float64Var(&flagStep, "dt", 1.0/60, "Seconds per frame")
	simulateCmd.Flags().IntVar(&flagReport, "report", 60, "Log the avatar state every n frames (0 = never)")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	src := flagScript
	if flagScriptFile != "" {
		data, err := os.ReadFile(flagScriptFile)
		if err != nil {
			return fmt.Errorf("failed to read script %s: %w", flagScriptFile, err)
		}
		src = string(data)
	}
	script, err := systems.ParseScript(src)
	if err != nil {
		return err
	}
	if flagFrames < 0 {
		return fmt.Errorf("frames must be >= 0, got %d", flagFrames)
	}

	var checkpoints int
	w := donburi.NewWorld()
	factory.CreateWorld(w, config.Debug.Seed, factory.SessionOptions{
		Source: script,
		Step:   flagStep,
		Listeners: []simulation.Listener{simulation.ListenerFuncs{
			Checkpoint: func() { checkpoints++ },
		}},
	})
	if entry, ok := tags.Tower.First(w); ok {
		logger.Info("tower generated",
			zap.Int64("seed", components.Tower.Get(entry).Seed),
			zap.Int("platforms", len(components.Tower.Get(entry).Tower.Platforms)),
		)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	ran := 0
	for ran < flagFrames {
		chunk := flagFrames - ran
		if flagReport > 0 {
			chunk = min(chunk, flagReport)
		}
		n, err := systems.RunFrames(ctx, w, chunk)
		ran += n
		if err != nil {
			logger.Warn("simulation interrupted", zap.Int("frames", ran))
			break
		}
		if flagReport > 0 {
			report(w, ran)
		}
	}

	summary(w, ran, checkpoints)
	return nil
}

func report(w donburi.World, frame int) {
	entry, ok := tags.Avatar.First(w)
	if !ok {
		return
	}
	s := components.Avatar.Get(entry).State
	logger.Info("frame",
		zap.Int("frame", frame),
		zap.Float64("x", s.Position.X()),
		zap.Float64("y", s.Position.Y()),
		zap.Float64("z", s.Position.Z()),
		zap.Bool("grounded", s.Grounded),
	)
}

func summary(w donburi.World, frames, checkpoints int) {
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	avatar, ok := tags.Avatar.First(w)
	if !ok {
		return
	}
	progress := components.Progress.Get(session)
	logger.Info("simulation finished",
		zap.Int("frames", frames),
		zap.Float64("seconds", components.Clock.Get(session).Elapsed),
		zap.Float64("height", progress.Height),
		zap.Float64("best_height", progress.BestHeight),
		zap.String("zone", progress.Zone),
		zap.Int("checkpoints", checkpoints),
		zap.Int("respawns", components.Avatar.Get(avatar).Respawns),
		zap.Bool("won", progress.Won),
	)
}
