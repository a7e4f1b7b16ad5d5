// Package surface provides the pickable geometry of the editor scene: the
// render sphere, the transparent normal-probe sphere and the back-plane.
package surface

import "github.com/wanadev/matcap-editor/pkg/math"

// Kind identifies which scene surface an intersection landed on.
type Kind int

const (
	KindRenderSphere Kind = iota
	KindNormalSphere
	KindPlane
)

// String returns a readable surface name for logs.
func (k Kind) String() string {
	switch k {
	case KindRenderSphere:
		return "render-sphere"
	case KindNormalSphere:
		return "normal-sphere"
	case KindPlane:
		return "plane"
	}
	return "unknown"
}

// Intersection is the result of a ray/surface query.
type Intersection struct {
	T      float64
	Point  math.Vec3
	Normal math.Vec3 // Outward surface normal at the hit
	Kind   Kind
}

// Surface is any geometry eligible for pointer picking.
type Surface interface {
	Kind() Kind
	Hit(r math.Ray, tMin, tMax float64) (Intersection, bool)
}

// Geometry constants for the editor scene.
const (
	RenderSphereRadius = 0.3
	ProbeSphereRadius  = 0.33
	BackPlaneZ         = -0.4

	// Width segments of the render sphere tessellation; height segments
	// are width*3/4. The probe only resolves approximate hit points so it
	// uses a coarser mesh.
	renderSphereSegments = 256
	probeSphereSegments  = 64
)

// Set holds the intersectable surfaces of the scene. Order carries no
// priority; picking is nearest-hit-wins across the whole set.
type Set struct {
	RenderSphere *SphereMesh
	NormalSphere *SphereMesh
	BackPlane    *Plane
}

// NewSet builds the editor's pickable geometry. Both spheres precompute
// their BVHs here so per-pointer-move queries stay sub-linear.
func NewSet() *Set {
	return &Set{
		RenderSphere: NewSphereMesh(KindRenderSphere, RenderSphereRadius, renderSphereSegments),
		NormalSphere: NewSphereMesh(KindNormalSphere, ProbeSphereRadius, probeSphereSegments),
		BackPlane:    NewPlane(math.Vec3{Z: BackPlaneZ}, math.Vec3{Z: 1}),
	}
}

// All returns every pickable surface.
func (s *Set) All() []Surface {
	return []Surface{s.BackPlane, s.RenderSphere, s.NormalSphere}
}

// Nearest intersects the ray against every surface in the set and returns
// the closest hit.
func (s *Set) Nearest(r math.Ray, tMin, tMax float64) (Intersection, bool) {
	var nearest Intersection
	found := false

	for _, surf := range s.All() {
		if isect, ok := surf.Hit(r, tMin, tMax); ok {
			if !found || isect.T < nearest.T {
				nearest = isect
				found = true
			}
		}
	}

	return nearest, found
}
