package tiltcard

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// minDepth keeps the perspective divide finite when a point is rotated
// through the viewer.
const minDepth = 1.0

// Project maps a point on the card plane, relative to the card center, to
// the screen plane. The point is rotated by rotateY then rotateX (the order
// of a CSS "rotateX(rx) rotateY(ry)" transform, angles in degrees) and
// divided by depth for a viewer at the given perspective distance.
func Project(p Vec2, rotX, rotY, perspective float64) Vec2 {
	sy, cy := math.Sincos(deg2rad(rotY))
	sx, cx := math.Sincos(deg2rad(rotX))

	// rotateY
	x1 := p.X * cy
	z1 := -p.X * sy
	y1 := p.Y

	// rotateX
	y2 := y1*cx - z1*sx
	z2 := y1*sx + z1*cx

	depth := perspective - z2
	if depth < minDepth {
		depth = minDepth
	}
	f := perspective / depth
	return Vec2{X: x1 * f, Y: y2 * f}
}

// faceMesh builds a tessellated, projected quad for the card face.
// The face texture of size (w, h) is mapped across n×n cells so the affine
// texture mapping of DrawTriangles stays close to perspective-correct.
// Vertices are placed around center, scaled by scale after projection.
type faceMesh struct {
	verts   []ebiten.Vertex
	indices []uint16
}

func (m *faceMesh) build(n int, w, h float64, st Style, perspective float64, center Vec2) {
	if n < 1 {
		n = 1
	}
	need := (n + 1) * (n + 1)
	if cap(m.verts) < need {
		m.verts = make([]ebiten.Vertex, need)
	}
	m.verts = m.verts[:need]

	alpha := float32(clamp01(st.Opacity))
	for j := 0; j <= n; j++ {
		v := float64(j) / float64(n)
		for i := 0; i <= n; i++ {
			u := float64(i) / float64(n)
			local := Vec2{X: (u - 0.5) * w, Y: (v - 0.5) * h}
			p := Project(local, st.RotateX, st.RotateY, perspective)
			m.verts[j*(n+1)+i] = ebiten.Vertex{
				DstX:   float32(center.X + p.X*st.Scale),
				DstY:   float32(center.Y + st.OffsetY + p.Y*st.Scale),
				SrcX:   float32(u * w),
				SrcY:   float32(v * h),
				ColorR: alpha,
				ColorG: alpha,
				ColorB: alpha,
				ColorA: alpha,
			}
		}
	}

	if len(m.indices) == 6*n*n {
		return
	}
	m.indices = m.indices[:0]
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			a := uint16(j*(n+1) + i)
			b := a + 1
			c := a + uint16(n+1)
			d := c + 1
			m.indices = append(m.indices, a, b, c, b, d, c)
		}
	}
}
