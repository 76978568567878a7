package simulation

import (
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
)

// Contact is a resolved landing.
type Contact struct {
	Position   mgl64.Vec3 // Candidate with Y snapped onto the platform
	PlatformID int
	Kind       leveldata.Kind
}

// Resolver lands a falling avatar on the tower's solid platforms.
type Resolver struct {
	Avatar  config.AvatarConfig
	Physics config.PhysicsConfig
}

// NewResolver returns a resolver using the global tuning.
func NewResolver() Resolver {
	return Resolver{Avatar: config.Avatar, Physics: config.Physics}
}

// Resolve tests candidate against the platforms near its height. The avatar
// is reduced to one point under the anchor; it lands when that point is in
// the platform's vertical window, inside the footprint grown by FootTolerance,
// and it is not rising. When several platforms qualify the earliest generated
// one wins. ok is false when the avatar keeps falling.
func (r Resolver) Resolve(candidate mgl64.Vec3, velocityY float64, tower *leveldata.Tower) (Contact, bool) {
	if tower == nil || velocityY > r.Physics.LandingEpsilon {
		return Contact{}, false
	}

	bottom := candidate.Y() - r.Avatar.HalfHeight
	best := -1
	// Platforms are indexed by height, so the scan is a range check rather
	// than a spatial query.
	tower.InHeightRange(candidate.Y()-r.Avatar.ScanWindow, candidate.Y()+r.Avatar.ScanWindow, func(id int) bool {
		if best >= 0 && id > best {
			return true
		}
		p := tower.Platforms[id]
		if !p.Kind.Solid() {
			return true
		}
		if bottom > p.Top()+r.Avatar.TopTolerance || bottom < p.Bottom()-r.Avatar.MarginBelow {
			return true
		}
		if !p.ContainsXZ(candidate.X(), candidate.Z(), r.Avatar.FootTolerance) {
			return true
		}
		best = id
		return true
	})
	if best < 0 {
		return Contact{}, false
	}

	p := tower.Platforms[best]
	snapped := candidate
	snapped[1] = p.Top() + r.Avatar.HalfHeight
	return Contact{Position: snapped, PlatformID: best, Kind: p.Kind}, true
}
