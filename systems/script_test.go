package systems

import (
	"testing"

	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("idle*2 forward+jump*3\nrotate_left")
	require.NoError(t, err)
	assert.Equal(t, 6, s.Frames())

	assert.Equal(t, simulation.InputState{}, s.Poll(1))
	assert.Equal(t, simulation.InputState{Forward: true, Jump: true}, s.Poll(2))
	assert.Equal(t, simulation.InputState{Forward: true, Jump: true}, s.Poll(4))
	assert.Equal(t, simulation.InputState{RotateLeft: true}, s.Poll(5))
	assert.Equal(t, simulation.InputState{}, s.Poll(6), "idles after the end")
	assert.Equal(t, simulation.InputState{}, s.Poll(-1))
}

func TestParseScriptErrors(t *testing.T) {
	for _, src := range []string{"fly*3", "forward*0", "forward*x", "forward+*2"} {
		_, err := ParseScript(src)
		assert.Error(t, err, src)
	}
}
