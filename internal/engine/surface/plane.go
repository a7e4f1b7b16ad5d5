package surface

import (
	gomath "math"

	"github.com/wanadev/matcap-editor/pkg/math"
)

// Plane is an infinite plane defined by a point and a normal. The editor
// uses one as an invisible backstop so pointer moves off the sphere still
// produce a deterministic redirect origin.
type Plane struct {
	Point  math.Vec3
	Normal math.Vec3
}

// NewPlane creates a plane, normalizing the normal.
func NewPlane(point, normal math.Vec3) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize()}
}

// Kind implements Surface.
func (p *Plane) Kind() Kind { return KindPlane }

// Hit tests if a ray intersects the plane.
func (p *Plane) Hit(r math.Ray, tMin, tMax float64) (Intersection, bool) {
	denominator := r.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if gomath.Abs(denominator) < 1e-8 {
		return Intersection{}, false
	}

	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return Intersection{}, false
	}

	return Intersection{
		T:      t,
		Point:  r.At(t),
		Normal: p.Normal,
		Kind:   KindPlane,
	}, true
}
