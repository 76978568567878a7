package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverlaysSections(t *testing.T) {
	t.Cleanup(Reset)

	err := Apply([]byte(`
physics:
  gravity: -20
  jump_impulse: 15
tower:
  total_levels: 24
`))
	require.NoError(t, err)

	assert.Equal(t, -20.0, Physics.Gravity)
	assert.Equal(t, 15.0, Physics.JumpImpulse)
	assert.Equal(t, 12.0, Physics.MoveSpeed, "unset fields keep their defaults")
	assert.Equal(t, 24, Tower.TotalLevels)
	assert.Len(t, Tower.Bands, 4)
	assert.Equal(t, DefaultCamera(), Camera)
}

func TestApplyRejectsInvalid(t *testing.T) {
	t.Cleanup(Reset)

	cases := map[string]string{
		"stride":     "tower: {checkpoint_stride: 0}",
		"levels":     "tower: {total_levels: -1}",
		"bands":      "tower: {bands: []}",
		"fixed step": "physics: {fixed_step: 0}",
		"max delta":  "physics: {max_frame_delta: 0.001}",
		"volume":     "audio: {sfx_volume: 1.5}",
		"null":       "camera: ~",
		"syntax":     "physics: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Apply([]byte(doc)))
			assert.Equal(t, DefaultTower(), Tower, "globals are untouched on error")
			assert.Equal(t, DefaultPhysics(), Physics)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  distance: 12\n"), 0o644))

	used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 12.0, Camera.Distance)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	require.NoError(t, Apply([]byte("progress: {victory_height: 10}")))
	Reset()
	assert.Equal(t, DefaultProgress(), Progress)
	assert.Equal(t, 960, C.Width)
}

func TestParseAction(t *testing.T) {
	id, ok := ParseAction("jump")
	assert.True(t, ok)
	assert.Equal(t, ActionJump, id)
	assert.Equal(t, "jump", id.String())

	_, ok = ParseAction("none")
	assert.False(t, ok)
	_, ok = ParseAction("fly")
	assert.False(t, ok)
	assert.Equal(t, "unknown", ActionCount.String())
}

func TestSetTotalLevels(t *testing.T) {
	t.Cleanup(Reset)

	require.NoError(t, SetTotalLevels(20))
	assert.Equal(t, 20, Tower.TotalLevels)
	assert.Equal(t, 2, Progress.TotalCheckpoints)
	assert.InDelta(t, 21.0, Progress.VictoryHeight, 1e-9)

	require.NoError(t, SetTotalLevels(0))
	assert.Equal(t, 0, Progress.TotalCheckpoints)

	assert.Error(t, SetTotalLevels(-3))
}
