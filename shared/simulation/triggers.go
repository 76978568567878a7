package simulation

import (
	"math"
	"sort"

	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/leveldata"
	"github.com/solarlune/resolv"
)

// triggerScale maps world units onto resolv's integer cell grid.
const triggerScale = 10

// TriggerKinds are the non-solid kinds tracked by a TriggerSpace.
var TriggerKinds = []leveldata.Kind{
	leveldata.KindJumpPad,
	leveldata.KindSpeedPad,
	leveldata.KindSpinner,
	leveldata.KindHazard,
	leveldata.KindCheckpoint,
}

// TriggerHit is one trigger volume the avatar touches.
type TriggerHit struct {
	PlatformID int
	Kind       leveldata.Kind
}

// TriggerSpace is a top-down resolv space holding the XZ footprints of the
// tower's trigger platforms. resolv narrows the candidates by cell; the
// vertical span is checked against the platform box afterwards.
type TriggerSpace struct {
	Space   *resolv.Space
	tower   *leveldata.Tower
	probe   *resolv.Object
	origin  float64
	avatar  config.AvatarConfig
	physics config.PhysicsConfig
	tags    []string
}

// NewTriggerSpace registers every trigger platform of tower.
func NewTriggerSpace(tower *leveldata.Tower, avatar config.AvatarConfig, physics config.PhysicsConfig) *TriggerSpace {
	extent := 1.0
	for _, p := range tower.Platforms {
		extent = math.Max(extent, math.Abs(p.Position.X())+p.HalfExtents.X())
		extent = math.Max(extent, math.Abs(p.Position.Z())+p.HalfExtents.Z())
	}
	origin := math.Ceil(extent) + 2
	size := int(2 * origin * triggerScale)

	ts := &TriggerSpace{
		Space:   resolv.NewSpace(size, size, 5, 5),
		tower:   tower,
		origin:  origin,
		avatar:  avatar,
		physics: physics,
	}
	for _, k := range TriggerKinds {
		ts.tags = append(ts.tags, k.String())
	}

	for id, p := range tower.Platforms {
		if p.Kind.Solid() {
			continue
		}
		x, z := ts.ToSpace(p.Position.X()-p.HalfExtents.X(), p.Position.Z()-p.HalfExtents.Z())
		obj := resolv.NewObject(x, z, p.HalfExtents.X()*2*triggerScale, p.HalfExtents.Z()*2*triggerScale, p.Kind.String())
		obj.Data = id
		ts.Space.Add(obj)
	}

	w := avatar.FootprintRadius * 2 * triggerScale
	ts.probe = resolv.NewObject(0, 0, w, w, "avatar")
	ts.Space.Add(ts.probe)
	return ts
}

// ToSpace converts world XZ to space coordinates.
func (ts *TriggerSpace) ToSpace(x, z float64) (float64, float64) {
	return (x + ts.origin) * triggerScale, (z + ts.origin) * triggerScale
}

// Contacts returns the trigger platforms the avatar overlaps, by id.
func (ts *TriggerSpace) Contacts(a AvatarState) []TriggerHit {
	r := ts.avatar.FootprintRadius
	ts.probe.X, ts.probe.Y = ts.ToSpace(a.Position.X()-r, a.Position.Z()-r)
	ts.probe.Update()

	check := ts.probe.Check(0, 0, ts.tags...)
	if check == nil {
		return nil
	}

	bottom := a.Bottom(ts.avatar)
	top := bottom + ts.avatar.Height

	var hits []TriggerHit
	for _, obj := range check.ObjectsByTags(ts.tags...) {
		id, ok := obj.Data.(int)
		if !ok {
			continue
		}
		p := ts.tower.Platforms[id]
		if !p.ContainsXZ(a.Position.X(), a.Position.Z(), r) {
			continue
		}
		reach := 0.0
		if p.Kind == leveldata.KindJumpPad || p.Kind == leveldata.KindSpeedPad {
			reach = ts.physics.PadReach
		}
		if top < p.Bottom() || bottom > p.Top()+reach {
			continue
		}
		hits = append(hits, TriggerHit{PlatformID: id, Kind: p.Kind})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].PlatformID < hits[j].PlatformID })
	return hits
}

// Objects returns every trigger object, for the debug overlay.
func (ts *TriggerSpace) Objects() []*resolv.Object {
	var out []*resolv.Object
	for _, obj := range ts.Space.Objects() {
		if obj != ts.probe {
			out = append(out, obj)
		}
	}
	return out
}

// ToWorld converts a space position back to world XZ.
func (ts *TriggerSpace) ToWorld(x, y float64) (float64, float64) {
	return x/triggerScale - ts.origin, y/triggerScale - ts.origin
}
