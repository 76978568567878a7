package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the centered announcement shown on checkpoints and victory.
type BannerData struct {
	Text  string
	Alpha float32
	Fade  *gween.Sequence // nil when idle
}

var Banner = donburi.NewComponentType[BannerData]()
