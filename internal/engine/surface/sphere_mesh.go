package surface

import (
	gomath "math"

	"github.com/wanadev/matcap-editor/pkg/math"
)

// SphereMesh is a UV-tessellated sphere with a BVH over its triangles.
// Picking resolves against triangle faces so the reported normal is the
// flat face normal, which is what placement records anchor to.
type SphereMesh struct {
	Radius float64

	kind Kind
	bvh  *bvhNode
}

// NewSphereMesh tessellates a sphere centered at the origin.
// widthSegments columns around the equator, widthSegments*3/4 rows from
// pole to pole, then builds the BVH.
func NewSphereMesh(kind Kind, radius float64, widthSegments int) *SphereMesh {
	heightSegments := widthSegments * 3 / 4
	tris := tessellate(radius, widthSegments, heightSegments)

	return &SphereMesh{
		Radius: radius,
		kind:   kind,
		bvh:    buildBVH(tris),
	}
}

// Kind implements Surface.
func (s *SphereMesh) Kind() Kind { return s.kind }

// Hit finds the nearest triangle intersection within [tMin, tMax].
func (s *SphereMesh) Hit(r math.Ray, tMin, tMax float64) (Intersection, bool) {
	tri, t, ok := s.bvh.hit(r, tMin, tMax)
	if !ok {
		return Intersection{}, false
	}

	return Intersection{
		T:      t,
		Point:  r.At(t),
		Normal: tri.normal,
		Kind:   s.kind,
	}, true
}

// TriangleCount reports the mesh size, mostly for tests and logs.
func (s *SphereMesh) TriangleCount() int {
	return s.bvh.count()
}

// tessellate generates outward-wound triangles of a UV sphere.
func tessellate(radius float64, widthSegments, heightSegments int) []triangle {
	vertex := func(row, col int) math.Vec3 {
		theta := float64(row) / float64(heightSegments) * gomath.Pi
		phi := float64(col) / float64(widthSegments) * 2 * gomath.Pi
		return math.Vec3{
			X: radius * gomath.Sin(theta) * gomath.Cos(phi),
			Y: radius * gomath.Cos(theta),
			Z: radius * gomath.Sin(theta) * gomath.Sin(phi),
		}
	}

	tris := make([]triangle, 0, widthSegments*heightSegments*2)
	for row := 0; row < heightSegments; row++ {
		for col := 0; col < widthSegments; col++ {
			a := vertex(row, col)
			b := vertex(row+1, col)
			c := vertex(row+1, col+1)
			d := vertex(row, col+1)

			// Quads collapse to single triangles at the poles
			if row != 0 {
				tris = append(tris, newTriangle(a, b, d))
			}
			if row != heightSegments-1 {
				tris = append(tris, newTriangle(b, c, d))
			}
		}
	}
	return tris
}

// triangle is one mesh face with its precomputed outward normal and bounds.
type triangle struct {
	a, b, c math.Vec3
	normal  math.Vec3
	bounds  aabb
}

func newTriangle(a, b, c math.Vec3) triangle {
	normal := b.Sub(a).Cross(c.Sub(a)).Normalize()

	// Orient away from the sphere center
	centroid := a.Add(b).Add(c).Scale(1.0 / 3.0)
	if normal.Dot(centroid) < 0 {
		normal = normal.Negate()
	}

	return triangle{
		a: a, b: b, c: c,
		normal: normal,
		bounds: aabb{
			min: a.Min(b).Min(c),
			max: a.Max(b).Max(c),
		},
	}
}

// hit runs Möller–Trumbore intersection.
func (tri *triangle) hit(r math.Ray, tMin, tMax float64) (float64, bool) {
	const epsilon = 1e-12

	edge1 := tri.b.Sub(tri.a)
	edge2 := tri.c.Sub(tri.a)

	h := r.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if gomath.Abs(det) < epsilon {
		return 0, false // Ray parallel to the face
	}

	invDet := 1.0 / det
	s := r.Origin.Sub(tri.a)
	u := s.Dot(h) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := r.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(q) * invDet
	if t < tMin || t > tMax {
		return 0, false
	}

	return t, true
}
