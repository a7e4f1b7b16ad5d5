package surface

import "github.com/wanadev/matcap-editor/pkg/math"

// aabb is an axis-aligned bounding box.
type aabb struct {
	min, max math.Vec3
}

func (b aabb) union(other aabb) aabb {
	return aabb{min: b.min.Min(other.min), max: b.max.Max(other.max)}
}

func (b aabb) center() math.Vec3 {
	return b.min.Add(b.max).Scale(0.5)
}

// longestAxis returns 0, 1 or 2 for X, Y or Z.
func (b aabb) longestAxis() int {
	size := b.max.Sub(b.min)
	if size.X >= size.Y && size.X >= size.Z {
		return 0
	}
	if size.Y >= size.Z {
		return 1
	}
	return 2
}

func (b aabb) axisValue(v math.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// hit tests the ray against the box with the slab method.
func (b aabb) hit(r math.Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin := b.axisValue(r.Origin, axis)
		dir := b.axisValue(r.Direction, axis)
		lo := b.axisValue(b.min, axis)
		hi := b.axisValue(b.max, axis)

		if dir == 0 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMax < tMin {
			return false
		}
	}
	return true
}

// bvhNode is a node of the bounding volume hierarchy over mesh triangles.
// Leaves hold the triangles directly; internal nodes hold children only.
type bvhNode struct {
	bounds    aabb
	left      *bvhNode
	right     *bvhNode
	triangles []triangle
}

// leafThreshold is the maximum triangle count stored in a leaf.
const leafThreshold = 8

// buildBVH recursively splits triangles at the spatial median of the
// longest bounding-box axis. Degenerate splits fall back to a leaf.
func buildBVH(tris []triangle) *bvhNode {
	bounds := tris[0].bounds
	for i := 1; i < len(tris); i++ {
		bounds = bounds.union(tris[i].bounds)
	}

	if len(tris) <= leafThreshold {
		return &bvhNode{bounds: bounds, triangles: tris}
	}

	axis := bounds.longestAxis()
	split := bounds.axisValue(bounds.center(), axis)

	var left, right []triangle
	for _, tri := range tris {
		if bounds.axisValue(tri.bounds.center(), axis) < split {
			left = append(left, tri)
		} else {
			right = append(right, tri)
		}
	}

	if len(left) == 0 || len(right) == 0 {
		return &bvhNode{bounds: bounds, triangles: tris}
	}

	return &bvhNode{
		bounds: bounds,
		left:   buildBVH(left),
		right:  buildBVH(right),
	}
}

// hit finds the nearest triangle intersection under this node.
func (n *bvhNode) hit(r math.Ray, tMin, tMax float64) (triangle, float64, bool) {
	if !n.bounds.hit(r, tMin, tMax) {
		return triangle{}, 0, false
	}

	if n.triangles != nil {
		var nearest triangle
		nearestT := tMax
		found := false
		for i := range n.triangles {
			if t, ok := n.triangles[i].hit(r, tMin, nearestT); ok {
				nearest = n.triangles[i]
				nearestT = t
				found = true
			}
		}
		return nearest, nearestT, found
	}

	// Closer child hit shrinks the search range for the other child
	if tri, t, ok := n.left.hit(r, tMin, tMax); ok {
		if triR, tR, okR := n.right.hit(r, tMin, t); okR {
			return triR, tR, true
		}
		return tri, t, true
	}
	return n.right.hit(r, tMin, tMax)
}

// count returns the number of triangles under this node.
func (n *bvhNode) count() int {
	if n.triangles != nil {
		return len(n.triangles)
	}
	return n.left.count() + n.right.count()
}
