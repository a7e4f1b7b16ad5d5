package camera

import "github.com/wanadev/matcap-editor/pkg/math"

// Capture is the fixed orthographic camera used for previews and exports.
// It sits on the +Z axis looking at the origin so captures are taken from
// a canonical viewpoint no matter how the interactive camera is orbited.
type Capture struct {
	Eye        math.Vec3
	HalfExtent float64 // Half-width of the square framed region
}

// NewCapture creates the capture camera framing the render sphere exactly.
func NewCapture(sphereRadius float64) *Capture {
	return &Capture{
		Eye:        math.Vec3{Z: 1},
		HalfExtent: sphereRadius,
	}
}

// Ray generates the parallel ray for viewport coordinates (s, t) in [0,1],
// with (0,0) the top-left corner.
func (c *Capture) Ray(s, t float64) math.Ray {
	origin := math.Vec3{
		X: c.Eye.X + (2*s-1)*c.HalfExtent,
		Y: c.Eye.Y + (1-2*t)*c.HalfExtent,
		Z: c.Eye.Z,
	}
	return math.Ray{Origin: origin, Direction: math.Vec3{Z: -1}}
}
