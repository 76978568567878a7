// Package assets turns sound IDs into playable effects.
package assets

import (
	"fmt"

	cfg "github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/sfx"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader handles synthesizing and caching of sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Rendered PCM per sound
	context  *audio.Context
	tones    map[cfg.SoundID]cfg.Tone
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context, tones map[cfg.SoundID]cfg.Tone) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
		tones:    tones,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid synthesis on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(data), nil
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}
	tone, ok := l.tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone for sound %d", id)
	}
	data, err := sfx.Synthesize(tone, l.context.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize sound %d: %w", id, err)
	}
	l.sfxCache[id] = data
	return data, nil
}
