package surface

import (
	gomath "math"
	"testing"

	"github.com/wanadev/matcap-editor/pkg/math"
)

func TestSphereMeshHitFrontal(t *testing.T) {
	sphere := NewSphereMesh(KindRenderSphere, 0.3, 64)

	ray := math.NewRay(math.Vec3{Z: 2}, math.Vec3{Z: -1})
	isect, ok := sphere.Hit(ray, 1e-4, 100)
	if !ok {
		t.Fatal("expected frontal ray to hit the sphere")
	}

	// Faceted mesh, so allow a small tessellation tolerance.
	if gomath.Abs(isect.Point.Z-0.3) > 0.01 {
		t.Errorf("hit point Z = %v, want ~0.3", isect.Point.Z)
	}
	if isect.Normal.Dot(math.Vec3{Z: 1}) < 0.99 {
		t.Errorf("hit normal %v not facing +Z", isect.Normal)
	}
	if isect.Kind != KindRenderSphere {
		t.Errorf("hit kind = %v, want render-sphere", isect.Kind)
	}
}

func TestSphereMeshMiss(t *testing.T) {
	sphere := NewSphereMesh(KindRenderSphere, 0.3, 64)

	ray := math.NewRay(math.Vec3{X: 1, Z: 2}, math.Vec3{Z: -1})
	if _, ok := sphere.Hit(ray, 1e-4, 100); ok {
		t.Error("expected ray 1 unit off axis to miss a 0.3 sphere")
	}
}

func TestSphereMeshNormalsPointOutward(t *testing.T) {
	sphere := NewSphereMesh(KindNormalSphere, 0.33, 32)

	dirs := []math.Vec3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		{X: 1, Y: 1, Z: 1},
	}
	for _, d := range dirs {
		dir := d.Normalize()
		ray := math.NewRay(dir.Scale(2), dir.Negate())
		isect, ok := sphere.Hit(ray, 1e-4, 100)
		if !ok {
			t.Fatalf("expected hit from direction %v", d)
		}
		if isect.Normal.Dot(dir) < 0.9 {
			t.Errorf("normal %v does not point outward toward %v", isect.Normal, dir)
		}
	}
}

func TestSphereMeshHitMatchesAnalyticDistance(t *testing.T) {
	sphere := NewSphereMesh(KindRenderSphere, 0.3, 128)

	ray := math.NewRay(math.Vec3{X: 0.1, Y: 0.05, Z: 1}, math.Vec3{Z: -1})
	isect, ok := sphere.Hit(ray, 1e-4, 100)
	if !ok {
		t.Fatal("expected hit")
	}

	// Analytic first intersection of the same ray with the sphere.
	oc := ray.Origin
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - 0.3*0.3
	analyticT := -halfB - gomath.Sqrt(halfB*halfB-c)

	if gomath.Abs(isect.T-analyticT) > 0.01 {
		t.Errorf("mesh t = %v, analytic t = %v", isect.T, analyticT)
	}
}

func TestPlaneHit(t *testing.T) {
	plane := NewPlane(math.Vec3{Z: -0.4}, math.Vec3{Z: 1})

	ray := math.NewRay(math.Vec3{X: 0.7, Z: 1}, math.Vec3{Z: -1})
	isect, ok := plane.Hit(ray, 1e-4, 100)
	if !ok {
		t.Fatal("expected plane hit")
	}
	if gomath.Abs(isect.T-1.4) > 1e-9 {
		t.Errorf("plane hit t = %v, want 1.4", isect.T)
	}
	if isect.Kind != KindPlane {
		t.Errorf("hit kind = %v, want plane", isect.Kind)
	}

	// Parallel ray misses.
	parallel := math.NewRay(math.Vec3{Z: 1}, math.Vec3{X: 1})
	if _, ok := plane.Hit(parallel, 1e-4, 100); ok {
		t.Error("expected parallel ray to miss the plane")
	}
}

func TestSetNearestPrefersCloserSurface(t *testing.T) {
	set := NewSet()

	// Straight down the Z axis the render sphere is in front of both the
	// probe interior hit and the plane.
	ray := math.NewRay(math.Vec3{Z: 2}, math.Vec3{Z: -1})
	isect, ok := set.Nearest(ray, 1e-4, 100)
	if !ok {
		t.Fatal("expected a hit down the Z axis")
	}
	if isect.Kind != KindNormalSphere {
		// The probe sphere is larger, so its front face is the nearest hit.
		t.Errorf("nearest kind = %v, want normal-sphere", isect.Kind)
	}

	// Far off axis only the plane remains.
	offAxis := math.NewRay(math.Vec3{X: 5, Z: 2}, math.Vec3{Z: -1})
	isect, ok = set.Nearest(offAxis, 1e-4, 100)
	if !ok {
		t.Fatal("expected plane hit off axis")
	}
	if isect.Kind != KindPlane {
		t.Errorf("nearest kind = %v, want plane", isect.Kind)
	}
}

func TestSphereMeshTriangleCount(t *testing.T) {
	sphere := NewSphereMesh(KindRenderSphere, 0.3, 16)

	// 16 width segments, 12 height segments; pole rows contribute one
	// triangle per column instead of two.
	want := 16 * (2*12 - 2)
	if got := sphere.TriangleCount(); got != want {
		t.Errorf("TriangleCount() = %d, want %d", got, want)
	}
}
