package common

import "github.com/chewxy/math32"

// Plane represents a plane ax + by + cz + d = 0 where (a, b, c) is the normal.
type Plane struct {
	Normal   Vec3
	Distance float32
}

// Frustum holds the six planes of a view frustum, oriented so that the positive
// half-space is inside.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// Frustum plane indices.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// ExtractFrustum extracts normalized frustum planes from a view-projection matrix
// using the Gribb/Hartmann method. For WebGPU clip space the near plane is row2 alone.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - vp: 16 float32 values of the view-projection matrix (column-major)
//
// Returns:
//   - Frustum: the extracted frustum
func ExtractFrustum(vp []float32) Frustum {
	row := func(i int) [4]float32 {
		return [4]float32{vp[i], vp[4+i], vp[8+i], vp[12+i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)
	combine := func(a, b [4]float32, sign float32) Plane {
		return Plane{
			Normal:   Vec3{a[0] + sign*b[0], a[1] + sign*b[1], a[2] + sign*b[2]},
			Distance: a[3] + sign*b[3],
		}
	}

	var f Frustum
	f.Planes[FrustumLeft] = combine(r3, r0, 1)
	f.Planes[FrustumRight] = combine(r3, r0, -1)
	f.Planes[FrustumBottom] = combine(r3, r1, 1)
	f.Planes[FrustumTop] = combine(r3, r1, -1)
	f.Planes[FrustumNear] = Plane{Normal: Vec3{r2[0], r2[1], r2[2]}, Distance: r2[3]}
	f.Planes[FrustumFar] = combine(r3, r2, -1)

	for i := range f.Planes {
		p := &f.Planes[i]
		if l := p.Normal.Len(); l > 0 {
			p.Normal = p.Normal.Scale(1 / l)
			p.Distance /= l
		}
	}
	return f
}

// IntersectsAABB reports whether the box is at least partially inside the frustum.
// Uses the positive-vertex test; the result is conservative near corners.
//
// Parameters:
//   - minB, maxB: world-space box corners
//
// Returns:
//   - bool: false only when the box is fully outside one plane
func (f *Frustum) IntersectsAABB(minB, maxB Vec3) bool {
	for _, p := range f.Planes {
		var v Vec3
		for k := 0; k < 3; k++ {
			if p.Normal[k] >= 0 {
				v[k] = maxB[k]
			} else {
				v[k] = minB[k]
			}
		}
		if p.Normal.Dot(v)+p.Distance < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether p lies inside all six planes.
func (f *Frustum) ContainsPoint(p Vec3) bool {
	for _, pl := range f.Planes {
		if pl.Normal.Dot(p)+pl.Distance < -math32.SmallestNonzeroFloat32 {
			return false
		}
	}
	return true
}
