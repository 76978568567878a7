package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a tuning override. Sections left out of the
// file keep their current values.
type File struct {
	Window   *Config         `yaml:"window"`
	Tower    *TowerConfig    `yaml:"tower"`
	Physics  *PhysicsConfig  `yaml:"physics"`
	Avatar   *AvatarConfig   `yaml:"avatar"`
	Camera   *CameraConfig   `yaml:"camera"`
	Progress *ProgressConfig `yaml:"progress"`
	Audio    *AudioConfig    `yaml:"audio"`
}

// Load applies a YAML override on top of the globals.
// Search order: customPath -> ~/.towerclimb/config.yaml -> ./configs/towerclimb.yaml.
// Returns the path that was applied, or "" when only defaults are in use.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	candidates := []string{userConfigPath("config.yaml"), filepath.Join("configs", "towerclimb.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// Apply decodes data and overlays every section it contains onto the globals.
// Fields missing from a present section keep their current values.
func Apply(data []byte) error {
	f := File{
		Window:   cloneOf(*C),
		Tower:    cloneOf(Tower),
		Physics:  cloneOf(Physics),
		Avatar:   cloneOf(Avatar),
		Camera:   cloneOf(Camera),
		Progress: cloneOf(Progress),
		Audio:    cloneOf(Audio),
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}

	C = f.Window
	Tower = *f.Tower
	Physics = *f.Physics
	Avatar = *f.Avatar
	Camera = *f.Camera
	Progress = *f.Progress
	Audio = *f.Audio
	return nil
}

// Reset restores every global to its default.
func Reset() {
	C = &Config{Width: 960, Height: 540}
	Tower = DefaultTower()
	Physics = DefaultPhysics()
	Avatar = DefaultAvatar()
	Camera = DefaultCamera()
	Progress = DefaultProgress()
	Audio = DefaultAudio()
}

func (f File) validate() error {
	if f.Window == nil || f.Tower == nil || f.Physics == nil || f.Avatar == nil || f.Camera == nil || f.Progress == nil || f.Audio == nil {
		return fmt.Errorf("config sections must not be null")
	}
	switch {
	case f.Tower.TotalLevels < 0:
		return fmt.Errorf("tower.total_levels must be >= 0, got %d", f.Tower.TotalLevels)
	case f.Tower.PlatformsPerRotation <= 0:
		return fmt.Errorf("tower.platforms_per_rotation must be > 0")
	case f.Tower.CheckpointStride <= 0:
		return fmt.Errorf("tower.checkpoint_stride must be > 0")
	case f.Tower.HeightIncrement <= 0:
		return fmt.Errorf("tower.height_increment must be > 0")
	case len(f.Tower.Bands) == 0:
		return fmt.Errorf("tower.bands must not be empty")
	case f.Physics.FixedStep <= 0:
		return fmt.Errorf("physics.fixed_step must be > 0")
	case f.Physics.MaxFrameDelta < f.Physics.FixedStep:
		return fmt.Errorf("physics.max_frame_delta must be >= physics.fixed_step")
	case f.Audio.SFXVolume < 0 || f.Audio.SFXVolume > 1:
		return fmt.Errorf("audio.sfx_volume must be in [0, 1], got %g", f.Audio.SFXVolume)
	case f.Audio.SampleRate <= 0:
		return fmt.Errorf("audio.sample_rate must be > 0")
	}
	return nil
}

func cloneOf[T any](v T) *T {
	return &v
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".towerclimb", filename)
}

// SetTotalLevels changes the tower height and moves the victory threshold
// and checkpoint total along with it.
func SetTotalLevels(n int) error {
	if n < 0 {
		return fmt.Errorf("levels must be >= 0, got %d", n)
	}
	delta := float64(n-Tower.TotalLevels) * Tower.HeightIncrement
	Tower.TotalLevels = n
	Progress.VictoryHeight += delta
	Progress.TotalCheckpoints = 0
	if n > 0 {
		Progress.TotalCheckpoints = (n - 1) / Tower.CheckpointStride
	}
	return nil
}
