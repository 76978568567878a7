// Package sound plays the effects the simulation queues each frame.
package sound

import (
	"sync"

	"github.com/automoto/towerclimb/assets"
	cfg "github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state, created once and shared across scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, cfg.Audio.Tones)
		globalSFXVolume = cfg.Audio.SFXVolume
	})
}

// PreloadAllSFX renders every sound effect at startup.
func PreloadAllSFX() error {
	initGlobalAudio()
	for id := range cfg.Audio.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			return err
		}
	}
	return nil
}

// Update plays this frame's queued effects. It runs after the simulation.
func Update(e *ecs.ECS) {
	initGlobalAudio()
	for _, id := range systems.PendingSFX(e.World) {
		playSFX(id)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Audio.Volumes[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}
