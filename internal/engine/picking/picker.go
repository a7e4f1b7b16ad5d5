// Package picking converts pointer coordinates into surface hits on the
// render sphere.
package picking

import (
	gomath "math"

	"github.com/wanadev/matcap-editor/internal/engine/camera"
	"github.com/wanadev/matcap-editor/internal/engine/indicator"
	"github.com/wanadev/matcap-editor/internal/engine/surface"
	"github.com/wanadev/matcap-editor/internal/engine/world"
	"github.com/wanadev/matcap-editor/pkg/math"
)

// tMin keeps intersections from re-hitting the surface a ray starts on.
const tMin = 1e-4

// Hit is the authoritative pick result: a point on the render sphere, the
// face normal there, and the surface the pointer ray originally struck.
type Hit struct {
	Point   math.Vec3
	Normal  math.Vec3
	Surface surface.Kind
}

// Picker resolves pointer positions against the scene surfaces. It keeps
// the last successful hit as the current authoritative one; failed picks
// leave it untouched.
type Picker struct {
	world  *world.World
	camera *camera.Orbit

	// Pointer coordinates normalize against the export resolution, not
	// the live canvas size, so picking stays consistent across display
	// scaling.
	exportSize float64
	pixelRatio float64

	current Hit
	hasHit  bool
}

// New creates a picker for the given scene and interactive camera.
func New(w *world.World, cam *camera.Orbit, exportSize int, pixelRatio float64) *Picker {
	return &Picker{
		world:      w,
		camera:     cam,
		exportSize: float64(exportSize),
		pixelRatio: pixelRatio,
	}
}

// ApplyConfig updates the normalization parameters.
func (p *Picker) ApplyConfig(exportSize int, pixelRatio float64) {
	p.exportSize = float64(exportSize)
	p.pixelRatio = pixelRatio
}

// Pick resolves pointer coordinates to a hit on the render sphere.
//
// The pointer ray is intersected against the whole surface set. A direct
// render-sphere hit is used as-is. A hit on the probe sphere or the
// back-plane is redirected: a second ray from that hit point toward the
// world origin is intersected against the render sphere only. When no
// final hit exists this returns false and all prior pick state, including
// the indicator, is left unchanged.
func (p *Picker) Pick(pointerX, pointerY float64) (Hit, bool) {
	ndcX := 2*pointerX*p.pixelRatio/p.exportSize - 1
	ndcY := -(2*pointerY*p.pixelRatio/p.exportSize - 1)

	ray := p.camera.Ray(ndcX, ndcY, 1)

	first, ok := p.world.Surfaces.Nearest(ray, tMin, gomath.Inf(1))
	if !ok {
		return Hit{}, false
	}

	final := first
	if first.Kind != surface.KindRenderSphere {
		redirect := math.NewRay(first.Point, first.Point.Negate())
		onSphere, ok := p.world.Surfaces.RenderSphere.Hit(redirect, tMin, gomath.Inf(1))
		if !ok {
			return Hit{}, false
		}
		final = onSphere
	}

	p.current = Hit{
		Point:   final.Point,
		Normal:  final.Normal,
		Surface: first.Kind,
	}
	p.hasHit = true

	p.world.Indicator.Update(final.Point, final.Normal, colorFor(first.Kind))

	return p.current, true
}

// Current returns the last successful hit.
func (p *Picker) Current() (Hit, bool) {
	return p.current, p.hasHit
}

func colorFor(kind surface.Kind) indicator.Color {
	switch kind {
	case surface.KindNormalSphere:
		return indicator.ColorProbe
	case surface.KindPlane:
		return indicator.ColorPlane
	}
	return indicator.ColorSphere
}
