// Package indicator holds the state of the pick-feedback gizmo: a short
// arrow at the current hit point, aimed along the surface normal.
package indicator

import "github.com/wanadev/matcap-editor/pkg/math"

// Length of the drawn arrow in world units.
const Length = 0.08

// Color identifies the gizmo tint, one per pick target.
type Color int

const (
	ColorSphere Color = iota // Direct hit on the render sphere
	ColorProbe               // Redirected hit via the probe sphere
	ColorPlane               // Redirected hit via the back-plane
)

// Indicator is the directional cursor gizmo. Purely visual; it never
// appears in captured output.
type Indicator struct {
	Position  math.Vec3
	Direction math.Vec3
	Color     Color
	Visible   bool
}

// New creates a hidden indicator.
func New() *Indicator {
	return &Indicator{Direction: math.Vec3{Z: 1}}
}

// Update moves the gizmo to a hit point and aims it along the normal.
func (in *Indicator) Update(position, normal math.Vec3, color Color) {
	in.Position = position
	in.Direction = normal
	in.Color = color
	in.Visible = true
}

// Tip returns the world position of the arrow tip.
func (in *Indicator) Tip() math.Vec3 {
	return in.Position.Add(in.Direction.Scale(Length))
}
