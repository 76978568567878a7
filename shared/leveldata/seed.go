package leveldata

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ParseSeed turns a seed flag into a layout seed. Integers are used as is;
// any other text is hashed, so "tower" names the same layout every run.
// An empty string returns 0, which callers treat as "pick one".
func ParseSeed(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	seed := int64(xxhash.Sum64String(s))
	if seed == 0 {
		seed = 1
	}
	return seed
}
