package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/leveldata"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagOut string

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print a generated tower as YAML",
	Long: `Generate a tower and print every platform with its kind, level,
position and size. Use --seed for a reproducible layout.`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Write to a file instead of stdout")
}

func runLayout(cmd *cobra.Command, _ []string) error {
	seed := config.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("random seed", zap.Int64("seed", seed))
	}
	tower := leveldata.NewTower(config.Tower, seed)

	var out io.Writer = cmd.OutOrStdout()
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", flagOut, err)
		}
		defer f.Close()
		out = f
	}

	if err := tower.WriteYAML(out); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}
	logger.Debug("layout written",
		zap.Int64("seed", seed),
		zap.Int("platforms", len(tower.Platforms)),
		zap.Int("checkpoints", tower.Count(leveldata.KindCheckpoint)),
	)
	return nil
}
