// towerclimb is a vertical platformer: climb a generated spiral tower.
//
// Usage:
//
//	towerclimb play        - Open the game window
//	towerclimb simulate    - Run the climb headless with scripted input
//	towerclimb layout      - Print a generated tower as YAML
//
// Global flags:
//
//	--config <path> - YAML tuning override
//	--seed <value>  - Layout seed, a number or a phrase (empty = random)
//	--levels <n>    - Override the tower height
//	--debug         - Debug logging and the debug overlay
package main

import (
	"fmt"
	"os"

	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/logging"
	"github.com/automoto/towerclimb/shared/leveldata"
	"github.com/automoto/towerclimb/systems"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	flagConfig string
	flagSeed   string
	flagLevels int
	flagDebug  bool

	logger = zap.NewNop()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "towerclimb",
	Short: "Climb a procedurally generated spiral tower",
	Long: `Tower Climb is a vertical platformer. Jump from platform to platform
up a generated spiral, pass checkpoints every eight levels and reach the
golden platform at the top.

Available commands:
  play      - Open the game window
  simulate  - Run the climb headless with scripted input
  layout    - Print a generated tower as YAML

Examples:
  towerclimb play
  towerclimb play --seed 42
  towerclimb play --seed "spiral of doom"
  towerclimb simulate --frames 600 --script "forward*60 forward+jump*30"
  towerclimb layout --levels 16`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML tuning override (default: ~/.towerclimb/config.yaml, ./configs/towerclimb.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "Layout seed, a number or any phrase (empty = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagLevels, "levels", 0, "Number of tower levels (0 = configured value)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and overlay")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(layoutCmd)
}

// setup loads configuration and the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	l, err := logging.New(flagDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	logger = l.With(zap.String("run", uuid.NewString()))
	systems.SetLogger(logger)

	path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Info("config loaded", zap.String("path", path))
	}

	if cmd.Flags().Changed("levels") {
		if err := config.SetTotalLevels(flagLevels); err != nil {
			return err
		}
	}
	config.Debug.Seed = leveldata.ParseSeed(flagSeed)
	config.Debug.Overlay = flagDebug
	return nil
}
