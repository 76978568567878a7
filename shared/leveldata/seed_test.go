package leveldata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeed(t *testing.T) {
	assert.Equal(t, int64(0), ParseSeed(""))
	assert.Equal(t, int64(0), ParseSeed("  "))
	assert.Equal(t, int64(42), ParseSeed("42"))
	assert.Equal(t, int64(-7), ParseSeed(" -7 "))

	phrase := ParseSeed("tower")
	assert.NotZero(t, phrase)
	assert.Equal(t, phrase, ParseSeed("tower"), "phrases are stable")
	assert.NotEqual(t, phrase, ParseSeed("Tower"))
}
