package gamemath

import "github.com/go-gl/mathgl/mgl64"

const (
	nearPlane = 0.1
	farPlane  = 500
)

// Projector maps world points to screen pixels for one camera transform.
type Projector struct {
	viewProj      mgl64.Mat4
	Width, Height float64
}

// NewProjector builds a perspective projector for an eye looking at lookAt.
// fov is the vertical field of view in radians.
func NewProjector(eye, lookAt mgl64.Vec3, fov, width, height float64) Projector {
	view := mgl64.LookAtV(eye, lookAt, mgl64.Vec3{0, 1, 0})
	proj := mgl64.Perspective(fov, width/height, nearPlane, farPlane)
	return Projector{viewProj: proj.Mul4(view), Width: width, Height: height}
}

// Project returns the screen position of v and its distance along the view
// axis. ok is false for points behind the near plane.
func (p Projector) Project(v mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := p.viewProj.Mul4x1(v.Vec4(1))
	if clip.W() < nearPlane {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) / 2 * p.Width
	y = (1 - ndc.Y()) / 2 * p.Height
	return x, y, clip.W(), true
}

// Face is one side of a box, corners in winding order.
type Face struct {
	Corners [4]mgl64.Vec3
	Normal  mgl64.Vec3
}

// Center is the mean of the corners.
func (f Face) Center() mgl64.Vec3 {
	return f.Corners[0].Add(f.Corners[1]).Add(f.Corners[2]).Add(f.Corners[3]).Mul(0.25)
}

// Facing reports whether the face's front side points at eye.
func (f Face) Facing(eye mgl64.Vec3) bool {
	return f.Normal.Dot(eye.Sub(f.Center())) > 0
}

// BoxFaces returns the six faces of an axis-aligned box: top, bottom, then
// the four sides.
func BoxFaces(center, half mgl64.Vec3) [6]Face {
	lo := center.Sub(half)
	hi := center.Add(half)
	corner := func(x, y, z float64) mgl64.Vec3 { return mgl64.Vec3{x, y, z} }

	return [6]Face{
		{Normal: mgl64.Vec3{0, 1, 0}, Corners: [4]mgl64.Vec3{
			corner(lo[0], hi[1], lo[2]), corner(hi[0], hi[1], lo[2]), corner(hi[0], hi[1], hi[2]), corner(lo[0], hi[1], hi[2]),
		}},
		{Normal: mgl64.Vec3{0, -1, 0}, Corners: [4]mgl64.Vec3{
			corner(lo[0], lo[1], lo[2]), corner(lo[0], lo[1], hi[2]), corner(hi[0], lo[1], hi[2]), corner(hi[0], lo[1], lo[2]),
		}},
		{Normal: mgl64.Vec3{1, 0, 0}, Corners: [4]mgl64.Vec3{
			corner(hi[0], lo[1], lo[2]), corner(hi[0], lo[1], hi[2]), corner(hi[0], hi[1], hi[2]), corner(hi[0], hi[1], lo[2]),
		}},
		{Normal: mgl64.Vec3{-1, 0, 0}, Corners: [4]mgl64.Vec3{
			corner(lo[0], lo[1], hi[2]), corner(lo[0], lo[1], lo[2]), corner(lo[0], hi[1], lo[2]), corner(lo[0], hi[1], hi[2]),
		}},
		{Normal: mgl64.Vec3{0, 0, 1}, Corners: [4]mgl64.Vec3{
			corner(hi[0], lo[1], hi[2]), corner(lo[0], lo[1], hi[2]), corner(lo[0], hi[1], hi[2]), corner(hi[0], hi[1], hi[2]),
		}},
		{Normal: mgl64.Vec3{0, 0, -1}, Corners: [4]mgl64.Vec3{
			corner(lo[0], lo[1], lo[2]), corner(hi[0], lo[1], lo[2]), corner(hi[0], hi[1], lo[2]), corner(lo[0], hi[1], lo[2]),
		}},
	}
}
