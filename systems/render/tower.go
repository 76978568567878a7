package render

import (
	"image/color"
	"sort"

	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/gamemath"
	"github.com/automoto/towerclimb/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Platforms further than this above or below the avatar are not drawn.
const drawWindow = 30

var lightDir = mgl64.Vec3{0.4, 1, 0.6}.Normalize()

type quad struct {
	points [4][2]float32
	depth  float64
	color  color.RGBA
}

var (
	quads      []quad
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image)
}

// projector returns the projector for the current camera transform.
func projector(e *ecs.ECS, screen *ebiten.Image) (gamemath.Projector, mgl64.Vec3, bool) {
	cameraEntry, ok := tags.Camera.First(e.World)
	if !ok {
		return gamemath.Projector{}, mgl64.Vec3{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	if !camera.State.Initialized {
		return gamemath.Projector{}, mgl64.Vec3{}, false
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	tf := camera.Transform
	return gamemath.NewProjector(tf.Eye, tf.LookAt, config.Camera.FieldOfView, float64(w), float64(h)), tf.Eye, true
}

// DrawTower draws nearby platforms and the avatar as shaded boxes, far
// faces first.
func DrawTower(e *ecs.ECS, screen *ebiten.Image) {
	proj, eye, ok := projector(e, screen)
	if !ok {
		return
	}
	towerEntry, ok := tags.Tower.First(e.World)
	if !ok {
		return
	}
	tower := components.Tower.Get(towerEntry).Tower

	focus := eye.Y()
	avatarEntry, hasAvatar := tags.Avatar.First(e.World)
	if hasAvatar {
		focus = components.Avatar.Get(avatarEntry).State.Position.Y()
	}

	quads = quads[:0]
	tower.InHeightRange(focus-drawWindow, focus+drawWindow, func(id int) bool {
		p := tower.Platforms[id]
		appendBox(proj, eye, p.Position, p.HalfExtents, kindColors[p.Kind])
		return true
	})
	if hasAvatar {
		a := components.Avatar.Get(avatarEntry).State
		half := mgl64.Vec3{config.Avatar.FootprintRadius, config.Avatar.Height / 2, config.Avatar.FootprintRadius}
		center := a.Position.Add(mgl64.Vec3{0, config.Avatar.Height/2 - config.Avatar.HalfHeight, 0})
		appendBox(proj, eye, center, half, avatarColor)
	}

	sort.Slice(quads, func(i, j int) bool { return quads[i].depth > quads[j].depth })
	for _, q := range quads {
		fillQuad(screen, q)
	}
}

func appendBox(proj gamemath.Projector, eye, center, half mgl64.Vec3, c color.RGBA) {
	for _, f := range gamemath.BoxFaces(center, half) {
		if !f.Facing(eye) {
			continue
		}
		q := quad{color: shade(c, 0.45+0.55*max(0, f.Normal.Dot(lightDir)))}
		visible := true
		for i, corner := range f.Corners {
			x, y, _, ok := proj.Project(corner)
			if !ok {
				visible = false
				break
			}
			q.points[i] = [2]float32{float32(x), float32(y)}
		}
		if !visible {
			continue
		}
		_, _, q.depth, _ = proj.Project(f.Center())
		quads = append(quads, q)
	}
}

func fillQuad(screen *ebiten.Image, q quad) {
	var path vector.Path
	path.MoveTo(q.points[0][0], q.points[0][1])
	for _, p := range q.points[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vertices, indices = path.AppendVerticesAndIndicesForFilling(vertices[:0], indices[:0])
	r, g, b, a := float32(q.color.R)/255, float32(q.color.G)/255, float32(q.color.B)/255, float32(q.color.A)/255
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = r
		vertices[i].ColorG = g
		vertices[i].ColorB = b
		vertices[i].ColorA = a
	}
	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawSky clears the frame.
func DrawSky(_ *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(skyColor)
}
