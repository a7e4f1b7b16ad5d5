// Package camera provides the interactive orbit camera and the fixed
// orthographic capture camera.
package camera

import (
	gomath "math"

	"github.com/wanadev/matcap-editor/pkg/math"
)

// Orbit is a perspective camera orbiting around a center point.
type Orbit struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float64 // Distance from center
	RotationX float64 // Pitch (vertical angle, radians)
	RotationY float64 // Yaw (horizontal angle, radians)

	// Vertical field of view in radians
	FovY float64

	// Constraints
	MinDistance float64
	MaxDistance float64
	MinPitch    float64
	MaxPitch    float64

	// Sensitivity
	DragSensitivity float64
	ZoomSensitivity float64
}

// NewOrbit creates an orbit camera framing the unit sphere area.
func NewOrbit() *Orbit {
	return &Orbit{
		Distance:        1.4,
		RotationX:       0.0,
		RotationY:       0.0,
		FovY:            40.0 * gomath.Pi / 180.0,
		MinDistance:     0.6,
		MaxDistance:     5.0,
		MinPitch:        -1.4,
		MaxPitch:        1.4,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
// Yaw 0, pitch 0 puts the camera on the +Z axis looking at the center.
func (c *Orbit) Position() math.Vec3 {
	x := c.Distance * gomath.Cos(c.RotationX) * gomath.Sin(c.RotationY)
	y := c.Distance * gomath.Sin(c.RotationX)
	z := c.Distance * gomath.Cos(c.RotationX) * gomath.Cos(c.RotationY)

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// basis returns the camera's right, up and forward unit vectors.
func (c *Orbit) basis() (right, up, forward math.Vec3) {
	forward = c.Center.Sub(c.Position()).Normalize()
	worldUp := math.Vec3{Y: 1}
	if gomath.Abs(forward.Dot(worldUp)) > 0.999 {
		worldUp = math.Vec3{Z: -1} // Looking straight up or down
	}
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// Ray casts a ray through normalized device coordinates in [-1,1].
// The aspect ratio stretches X; picking uses a square target so it is 1.
func (c *Orbit) Ray(ndcX, ndcY, aspect float64) math.Ray {
	right, up, forward := c.basis()
	tanHalf := gomath.Tan(c.FovY / 2)

	dir := forward.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(up.Scale(ndcY * tanHalf))

	return math.NewRay(c.Position(), dir)
}

// Project maps a world point to pixel coordinates in a width×height target.
// Returns false when the point is behind the camera.
func (c *Orbit) Project(p math.Vec3, width, height float64) (math.Vec2, bool) {
	right, up, forward := c.basis()
	tanHalf := gomath.Tan(c.FovY / 2)
	aspect := width / height

	v := p.Sub(c.Position())
	depth := v.Dot(forward)
	if depth <= 0 {
		return math.Vec2{}, false
	}

	ndcX := v.Dot(right) / (depth * tanHalf * aspect)
	ndcY := v.Dot(up) / (depth * tanHalf)

	return math.Vec2{
		X: (ndcX + 1) / 2 * width,
		Y: (1 - ndcY) / 2 * height,
	}, true
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *Orbit) HandleDrag(deltaX, deltaY float64) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *Orbit) HandleZoom(delta float64) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
