package picking

import (
	"testing"

	"github.com/wanadev/matcap-editor/internal/engine/camera"
	"github.com/wanadev/matcap-editor/internal/engine/indicator"
	"github.com/wanadev/matcap-editor/internal/engine/surface"
	"github.com/wanadev/matcap-editor/internal/engine/world"
	"github.com/wanadev/matcap-editor/pkg/math"
)

const exportSize = 512

func newTestPicker() (*Picker, *world.World) {
	w := world.New()
	cam := camera.NewOrbit()
	return New(w, cam, exportSize, 1), w
}

func TestPickCenterRedirectsToRenderSphere(t *testing.T) {
	p, w := newTestPicker()

	// Pointer at the canvas center: the ray passes through the probe
	// sphere first, so the pick is redirected onto the render sphere.
	hit, ok := p.Pick(exportSize/2, exportSize/2)
	if !ok {
		t.Fatal("expected center pick to succeed")
	}

	if hit.Point.Distance(math.Vec3{Z: surface.RenderSphereRadius}) > 0.01 {
		t.Errorf("hit point = %v, want ~(0,0,%v)", hit.Point, surface.RenderSphereRadius)
	}
	if hit.Normal.Dot(math.Vec3{Z: 1}) < 0.99 {
		t.Errorf("hit normal = %v, want ~+Z", hit.Normal)
	}
	if hit.Surface != surface.KindNormalSphere {
		t.Errorf("initial surface = %v, want normal-sphere", hit.Surface)
	}

	if !w.Indicator.Visible {
		t.Error("indicator should be visible after a successful pick")
	}
	if w.Indicator.Color != indicator.ColorProbe {
		t.Errorf("indicator color = %v, want probe color", w.Indicator.Color)
	}
	if w.Indicator.Position.Distance(hit.Point) > 1e-12 {
		t.Error("indicator not positioned at the hit point")
	}
}

func TestPickOffSphereRedirectsViaPlane(t *testing.T) {
	p, _ := newTestPicker()

	// Pointer near the canvas edge: the ray misses both spheres and lands
	// on the back-plane, then redirects toward the origin and still
	// resolves a point on the render sphere.
	hit, ok := p.Pick(exportSize-1, exportSize/2)
	if !ok {
		t.Fatal("expected edge pick to succeed via the plane")
	}
	if hit.Surface != surface.KindPlane {
		t.Errorf("initial surface = %v, want plane", hit.Surface)
	}

	// The resolved point is on the render sphere.
	if r := hit.Point.Length(); r < surface.RenderSphereRadius-0.01 || r > surface.RenderSphereRadius+0.01 {
		t.Errorf("resolved point radius = %v, want ~%v", r, surface.RenderSphereRadius)
	}
}

func TestPickDirectRenderSphereHit(t *testing.T) {
	p, w := newTestPicker()

	// Shrink the probe below the render sphere so the first ray's nearest
	// hit is the render sphere itself: no redirect, sphere-colored
	// indicator.
	w.Surfaces.NormalSphere = surface.NewSphereMesh(surface.KindNormalSphere, 0.1, 32)

	hit, ok := p.Pick(exportSize/2, exportSize/2)
	if !ok {
		t.Fatal("expected direct pick to succeed")
	}
	if hit.Surface != surface.KindRenderSphere {
		t.Errorf("initial surface = %v, want render-sphere", hit.Surface)
	}
	if w.Indicator.Color != indicator.ColorSphere {
		t.Errorf("indicator color = %v, want sphere color", w.Indicator.Color)
	}
}

func TestPickMissLeavesStateUntouched(t *testing.T) {
	p, w := newTestPicker()

	// Replace the backstop with a plane containing the camera ray so that
	// off-sphere rays have nothing to land on.
	w.Surfaces.BackPlane = surface.NewPlane(math.Vec3{}, math.Vec3{Y: 1})

	first, ok := p.Pick(exportSize/2, exportSize/2)
	if !ok {
		t.Fatal("expected center pick to succeed")
	}
	indicatorPos := w.Indicator.Position

	// Top-left corner: misses both spheres and the degenerate plane.
	if _, ok := p.Pick(0, 0); ok {
		t.Fatal("expected corner pick to miss")
	}

	current, has := p.Current()
	if !has {
		t.Fatal("current hit lost after a miss")
	}
	if current != first {
		t.Errorf("current hit changed on miss: %+v != %+v", current, first)
	}
	if w.Indicator.Position != indicatorPos {
		t.Error("indicator moved on a failed pick")
	}
}

func TestPickNormalizationUsesExportSize(t *testing.T) {
	w := world.New()
	cam := camera.NewOrbit()

	// Same physical pointer position expressed at two pixel ratios must
	// resolve to the same surface point.
	p1 := New(w, cam, exportSize, 1)
	hit1, ok := p1.Pick(300, 220)
	if !ok {
		t.Fatal("expected pick to succeed at ratio 1")
	}

	p2 := New(w, cam, exportSize, 2)
	hit2, ok := p2.Pick(150, 110)
	if !ok {
		t.Fatal("expected pick to succeed at ratio 2")
	}

	if hit1.Point.Distance(hit2.Point) > 1e-9 {
		t.Errorf("ratio 1 hit %v differs from ratio 2 hit %v", hit1.Point, hit2.Point)
	}
}

func TestCurrentBeforeAnyPick(t *testing.T) {
	p, _ := newTestPicker()

	if _, ok := p.Current(); ok {
		t.Error("expected no current hit before the first pick")
	}
}
