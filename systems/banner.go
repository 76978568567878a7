package systems

import (
	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	bannerFadeIn  = 0.25
	bannerHold    = 1.5
	bannerFadeOut = 0.75
)

// ShowBanner announces text, restarting the fade if one is running.
func ShowBanner(w donburi.World, text string) {
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	banner := components.Banner.Get(session)

	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, bannerFadeIn, ease.OutQuad),
		gween.New(1, 1, bannerHold, ease.Linear),
		gween.New(1, 0, bannerFadeOut, ease.InQuad),
	)
	banner.Text = text
	banner.Alpha = 0
	banner.Fade = tw
}

// UpdateBanner advances the banner fade by the frame delta.
func UpdateBanner(w donburi.World) {
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	banner := components.Banner.Get(session)
	if banner.Fade == nil {
		return
	}

	alpha, _, done := banner.Fade.Update(float32(components.Clock.Get(session).Delta))
	banner.Alpha = alpha
	if done {
		banner.Text = ""
		banner.Alpha = 0
		banner.Fade = nil
	}
}
