package common

import "github.com/chewxy/math32"

// Ray is a half-line used for pointer picking.
type Ray struct {
	Origin    Vec3
	Direction Vec3 // unit length
}

// ScreenRay builds a world-space picking ray from window pixel coordinates.
// The inverse view-projection matrix maps clip space back to world space; the
// ray runs from the near plane (z = 0) toward the far plane (z = 1).
//
// Parameters:
//   - x, y: cursor position in window pixels, origin top-left
//   - width, height: window size in pixels
//   - invViewProj: inverse of the camera's view-projection matrix (column-major)
//
// Returns:
//   - Ray: the picking ray
//   - bool: false if the window size is degenerate
func ScreenRay(x, y float32, width, height int, invViewProj []float32) (Ray, bool) {
	if width <= 0 || height <= 0 {
		return Ray{}, false
	}
	ndcX := 2*x/float32(width) - 1
	ndcY := 1 - 2*y/float32(height)

	near := TransformPoint(invViewProj, Vec3{ndcX, ndcY, 0})
	far := TransformPoint(invViewProj, Vec3{ndcX, ndcY, 1})
	dir := far.Sub(near)
	if dir.Len() == 0 {
		return Ray{}, false
	}
	return Ray{Origin: near, Direction: dir.Normalize()}, true
}

// IntersectAABB tests the ray against an axis-aligned box using the slab method.
//
// Parameters:
//   - minB: box minimum corner
//   - maxB: box maximum corner
//
// Returns:
//   - float32: distance along the ray to the entry point (0 if the origin is inside)
//   - bool: true if the ray hits the box in front of its origin
func (r Ray) IntersectAABB(minB, maxB Vec3) (float32, bool) {
	tMin := float32(0)
	tMax := float32(math32.MaxFloat32)
	for i := 0; i < 3; i++ {
		if math32.Abs(r.Direction[i]) < 1e-8 {
			if r.Origin[i] < minB[i] || r.Origin[i] > maxB[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Direction[i]
		t1 := (minB[i] - r.Origin[i]) * inv
		t2 := (maxB[i] - r.Origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math32.Max(tMin, t1)
		tMax = math32.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// TransformAABB returns the world-space bounds of a local box after applying m.
// All eight corners are transformed, so the result is conservative under rotation.
//
// Parameters:
//   - m: column-major model matrix
//   - minB, maxB: local box corners
//
// Returns:
//   - Vec3, Vec3: world-space min and max corners
func TransformAABB(m []float32, minB, maxB Vec3) (Vec3, Vec3) {
	outMin := Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32}
	outMax := Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32}
	for i := 0; i < 8; i++ {
		c := Vec3{minB[0], minB[1], minB[2]}
		if i&1 != 0 {
			c[0] = maxB[0]
		}
		if i&2 != 0 {
			c[1] = maxB[1]
		}
		if i&4 != 0 {
			c[2] = maxB[2]
		}
		p := TransformPoint(m, c)
		for k := 0; k < 3; k++ {
			outMin[k] = math32.Min(outMin[k], p[k])
			outMax[k] = math32.Max(outMax[k], p[k])
		}
	}
	return outMin, outMax
}
