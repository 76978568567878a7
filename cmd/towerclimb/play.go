package main

import (
	"fmt"
	"image"

	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/controls"
	"github.com/automoto/towerclimb/fonts"
	"github.com/automoto/towerclimb/scenes"
	"github.com/automoto/towerclimb/systems"
	"github.com/automoto/towerclimb/systems/factory"
	"github.com/automoto/towerclimb/systems/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and climb.

Controls:
  WASD / Arrows  - Move relative to the camera
  Space          - Jump
  Q / E          - Turn the camera
  R / F          - Raise or lower the camera
  Click          - Capture the mouse for camera control
  Escape         - Release the mouse
  F3             - Debug overlay`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var (
	flagMute   bool
	flagVolume float64
)

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound effect volume (0.0 - 1.0)")
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagVolume < 0 || flagVolume > 1 {
		return fmt.Errorf("volume must be in [0, 1], got %g", flagVolume)
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	// Records are optional; the game runs without them
	if err := systems.InitPersistence("towerclimb"); err != nil {
		logger.Warn("playing without saved records", zap.Error(err))
	}
	records, _ := systems.LoadRecords()

	muted := flagMute
	if !muted {
		if err := sound.PreloadAllSFX(); err != nil {
			logger.Warn("sound disabled", zap.Error(err))
			muted = true
		}
	}
	if !muted && cmd.Flags().Changed("volume") {
		sound.SetSFXVolume(flagVolume)
	}

	ebiten.SetWindowTitle("Tower Climb")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	scene := scenes.NewTowerScene(config.Debug.Seed, factory.SessionOptions{
		Source:  controls.NewSource(),
		Step:    1 / float64(ebiten.TPS()),
		Records: records,
		Debug:   config.Debug.Overlay,
	})
	if !muted {
		scene.WithSound()
	}
	defer scene.Close()

	logger.Info("starting",
		zap.Int64("seed", config.Debug.Seed),
		zap.Int("levels", config.Tower.TotalLevels),
	)
	return ebiten.RunGame(&Game{scene: scene})
}
