package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota

	SoundJump
	SoundLand
	SoundJumpPad
	SoundSpeedPad
	SoundRespawn

	SoundCheckpoint
	SoundVictory
)

// Tone is a short synthesized effect: each note plays for NoteSeconds
// with a linear decay.
type Tone struct {
	Notes       []float64 `yaml:"notes"` // Hz
	NoteSeconds float64   `yaml:"note_seconds"`
	Wave        string    `yaml:"wave"` // "sine" or "square"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int                 `yaml:"sample_rate"`
	SFXVolume  float64             `yaml:"sfx_volume"` // 0.0 - 1.0
	Tones      map[SoundID]Tone    `yaml:"-"`
	Volumes    map[SoundID]float64 `yaml:"-"` // Per-sound multipliers
}

var Audio AudioConfig

// DefaultAudio returns the stock effect set.
func DefaultAudio() AudioConfig {
	return AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.5,
		Tones: map[SoundID]Tone{
			SoundJump:       {Notes: []float64{440, 660}, NoteSeconds: 0.05, Wave: "square"},
			SoundLand:       {Notes: []float64{110}, NoteSeconds: 0.06, Wave: "sine"},
			SoundJumpPad:    {Notes: []float64{330, 495, 660, 990}, NoteSeconds: 0.04, Wave: "square"},
			SoundSpeedPad:   {Notes: []float64{880, 1175}, NoteSeconds: 0.05, Wave: "sine"},
			SoundRespawn:    {Notes: []float64{392, 294, 196}, NoteSeconds: 0.09, Wave: "square"},
			SoundCheckpoint: {Notes: []float64{523.25, 659.25, 783.99}, NoteSeconds: 0.1, Wave: "sine"},
			SoundVictory:    {Notes: []float64{523.25, 659.25, 783.99, 1046.5}, NoteSeconds: 0.18, Wave: "sine"},
		},
		Volumes: map[SoundID]float64{
			SoundLand:     0.6,
			SoundSpeedPad: 0.7,
		},
	}
}
