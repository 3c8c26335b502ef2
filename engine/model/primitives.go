package model

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
)

// NewBox builds an axis-aligned box centred on the origin.
// Each face has its own four vertices so normals and UVs stay flat.
//
// Parameters:
//   - w: extent along X
//   - h: extent along Y
//   - d: extent along Z
//
// Returns:
//   - Model: a mesh with 24 vertices and 36 indices
func NewBox(w, h, d float32) Model {
	hx, hy, hz := w/2, h/2, d/2

	type face struct {
		normal  [3]float32
		corners [4][3]float32
	}
	faces := []face{
		{[3]float32{0, 0, 1}, [4][3]float32{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}},
	}
	uvs := [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, c := range f.corners {
			vertices = append(vertices, GPUVertex{Position: c, Normal: f.normal, TexCoord: uvs[i]})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return NewModel(
		WithName(fmt.Sprintf("box_%gx%gx%g", w, h, d)),
		WithMesh(vertices, indices),
	)
}

// NewPlane builds a quad in the XY plane facing +Z, centred on the origin.
// UV (0,0) is the top-left corner so textures upload without flipping.
//
// Parameters:
//   - w: extent along X
//   - h: extent along Y
//
// Returns:
//   - Model: a mesh with 4 vertices and 6 indices
func NewPlane(w, h float32) Model {
	hx, hy := w/2, h/2
	n := [3]float32{0, 0, 1}
	vertices := []GPUVertex{
		{Position: [3]float32{-hx, -hy, 0}, Normal: n, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{hx, -hy, 0}, Normal: n, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{hx, hy, 0}, Normal: n, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{-hx, hy, 0}, Normal: n, TexCoord: [2]float32{0, 0}},
	}
	return NewModel(
		WithName(fmt.Sprintf("plane_%gx%g", w, h)),
		WithMesh(vertices, []uint32{0, 1, 2, 0, 2, 3}),
	)
}

// NewCylinder builds a capped cylinder along Y centred on the origin.
// Used for the navigation buttons and the achievement pedestals.
//
// Parameters:
//   - radiusTop: radius of the +Y cap
//   - radiusBottom: radius of the -Y cap
//   - height: extent along Y
//   - segments: radial segment count, clamped to at least 3
//
// Returns:
//   - Model: the cylinder mesh
func NewCylinder(radiusTop, radiusBottom, height float32, segments int) Model {
	segments = max(segments, 3)
	hy := height / 2

	vertices := make([]GPUVertex, 0, (segments+1)*2+(segments+2)*2)
	indices := make([]uint32, 0, segments*12)

	// Side normals tilt by the slope between the two radii.
	slope := (radiusBottom - radiusTop) / common.Coalesce(height, 1)
	for i := 0; i <= segments; i++ {
		u := float32(i) / float32(segments)
		theta := float64(u) * 2 * math.Pi
		sin, cos := float32(math.Sin(theta)), float32(math.Cos(theta))
		normal := common.Vec3{sin, slope, cos}.Normalize()
		vertices = append(vertices,
			GPUVertex{Position: [3]float32{radiusTop * sin, hy, radiusTop * cos}, Normal: normal, TexCoord: [2]float32{u, 0}},
			GPUVertex{Position: [3]float32{radiusBottom * sin, -hy, radiusBottom * cos}, Normal: normal, TexCoord: [2]float32{u, 1}},
		)
	}
	for i := 0; i < segments; i++ {
		a := uint32(i * 2)
		indices = append(indices, a, a+1, a+3, a, a+3, a+2)
	}

	addCap := func(y, radius, ny float32) {
		center := uint32(len(vertices))
		vertices = append(vertices, GPUVertex{Position: [3]float32{0, y, 0}, Normal: [3]float32{0, ny, 0}, TexCoord: [2]float32{0.5, 0.5}})
		for i := 0; i <= segments; i++ {
			theta := float64(i) / float64(segments) * 2 * math.Pi
			sin, cos := float32(math.Sin(theta)), float32(math.Cos(theta))
			vertices = append(vertices, GPUVertex{
				Position: [3]float32{radius * sin, y, radius * cos},
				Normal:   [3]float32{0, ny, 0},
				TexCoord: [2]float32{0.5 + sin/2, 0.5 - cos/2},
			})
		}
		for i := uint32(0); i < uint32(segments); i++ {
			if ny > 0 {
				indices = append(indices, center, center+1+i, center+2+i)
			} else {
				indices = append(indices, center, center+2+i, center+1+i)
			}
		}
	}
	addCap(hy, radiusTop, 1)
	addCap(-hy, radiusBottom, -1)

	return NewModel(
		WithName(fmt.Sprintf("cylinder_%g_%g_%g_%d", radiusTop, radiusBottom, height, segments)),
		WithMesh(vertices, indices),
	)
}
