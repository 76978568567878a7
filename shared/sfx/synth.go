// Package sfx renders the game's sound effects as raw PCM so they need no
// asset files.
package sfx

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/automoto/towerclimb/config"
)

const (
	// BytesPerFrame is one 16-bit little-endian stereo frame.
	BytesPerFrame = 4

	amplitude = 0.8
)

// Synthesize renders tone as 16-bit signed little-endian stereo PCM.
func Synthesize(tone config.Tone, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0, got %d", sampleRate)
	}
	if len(tone.Notes) == 0 || tone.NoteSeconds <= 0 {
		return nil, fmt.Errorf("tone needs notes and a positive note length")
	}
	osc, err := oscillator(tone.Wave)
	if err != nil {
		return nil, err
	}

	per := int(tone.NoteSeconds * float64(sampleRate))
	buf := make([]byte, 0, per*len(tone.Notes)*BytesPerFrame)
	for _, hz := range tone.Notes {
		for i := 0; i < per; i++ {
			phase := hz * float64(i) / float64(sampleRate)
			phase -= math.Floor(phase)
			decay := 1 - float64(i)/float64(per)

			s := uint16(int16(osc(phase) * decay * amplitude * math.MaxInt16))
			buf = binary.LittleEndian.AppendUint16(buf, s)
			buf = binary.LittleEndian.AppendUint16(buf, s)
		}
	}
	return buf, nil
}

// oscillator maps a phase in [0, 1) to a sample in [-1, 1].
func oscillator(wave string) (func(float64) float64, error) {
	switch wave {
	case "", "sine":
		return func(p float64) float64 { return math.Sin(2 * math.Pi * p) }, nil
	case "square":
		// Square waves are much louder than sines at the same amplitude.
		return func(p float64) float64 {
			if p < 0.5 {
				return 0.4
			}
			return -0.4
		}, nil
	default:
		return nil, fmt.Errorf("unknown wave %q", wave)
	}
}
