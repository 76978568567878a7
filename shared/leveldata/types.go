// Package leveldata provides the procedural tower layout.
// It depends on no engine, ECS or collision package: pure data only.
package leveldata

import "github.com/go-gl/mathgl/mgl64"

// Kind tags a platform with its behavior.
type Kind int

const (
	KindSpawn Kind = iota
	KindNormal
	KindCheckpoint
	KindJumpPad
	KindSpeedPad
	KindMoving
	KindSpinner
	KindHazard
	KindBridge
	KindVictory
)

var kindNames = [...]string{
	KindSpawn:      "spawn",
	KindNormal:     "normal",
	KindCheckpoint: "checkpoint",
	KindJumpPad:    "jump_pad",
	KindSpeedPad:   "speed_pad",
	KindMoving:     "moving",
	KindSpinner:    "spinner",
	KindHazard:     "hazard",
	KindBridge:     "bridge",
	KindVictory:    "victory",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText lets layouts dump kinds by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Solid reports whether the avatar can stand on platforms of this kind.
// The rest are trigger volumes.
func (k Kind) Solid() bool {
	switch k {
	case KindSpawn, KindNormal, KindBridge, KindMoving, KindVictory:
		return true
	}
	return false
}

// NoLevel marks platforms that do not belong to a generated level.
const NoLevel = -1

// Platform is an axis-aligned box. Position is the box center.
type Platform struct {
	Position    mgl64.Vec3
	HalfExtents mgl64.Vec3
	Kind        Kind
	Level       int
}

// Top is the height of the platform's upper face.
func (p Platform) Top() float64 {
	return p.Position.Y() + p.HalfExtents.Y()
}

// Bottom is the height of the platform's lower face.
func (p Platform) Bottom() float64 {
	return p.Position.Y() - p.HalfExtents.Y()
}

// ContainsXZ reports whether (x, z) lies within the footprint grown by margin.
func (p Platform) ContainsXZ(x, z, margin float64) bool {
	dx := x - p.Position.X()
	dz := z - p.Position.Z()
	if dx < 0 {
		dx = -dx
	}
	if dz < 0 {
		dz = -dz
	}
	return dx <= p.HalfExtents.X()+margin && dz <= p.HalfExtents.Z()+margin
}
