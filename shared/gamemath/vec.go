package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 builds a vector from a config triple.
func Vec3(v [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// HalfExtents halves a full box size.
func HalfExtents(size [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{size[0] / 2, size[1] / 2, size[2] / 2}
}

// HorizontalLen is the length of v projected on the XZ plane.
func HorizontalLen(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}

// RotateXZ rotates a planar input (x strafe, z forward/back) by a heading in radians.
func RotateXZ(x, z, heading float64) (float64, float64) {
	sin, cos := math.Sincos(heading)
	return x*cos - z*sin, x*sin + z*cos
}

// Lerp moves from toward to by t.
func Lerp(from, to mgl64.Vec3, t float64) mgl64.Vec3 {
	return from.Add(to.Sub(from).Mul(t))
}
