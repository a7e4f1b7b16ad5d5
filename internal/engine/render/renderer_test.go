package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/wanadev/matcap-editor/internal/engine/camera"
	"github.com/wanadev/matcap-editor/internal/engine/lighting"
	"github.com/wanadev/matcap-editor/internal/engine/world"
	"github.com/wanadev/matcap-editor/pkg/math"
)

func luminance(c color.RGBA) int {
	return int(c.R) + int(c.G) + int(c.B)
}

func TestCaptureDimensionsFollowPixelRatio(t *testing.T) {
	r := New()
	w := world.New()
	cam := camera.NewCapture(0.3)

	tests := []struct {
		size  int
		ratio float64
		want  int
	}{
		{64, 1, 64},
		{64, 2, 128},
		{100, 2.5, 250},
	}

	for _, tt := range tests {
		img := r.Capture(w, cam, tt.size, tt.ratio, Material{Roughness: 0.3})
		if got := img.Bounds().Dx(); got != tt.want {
			t.Errorf("Capture(size=%d, ratio=%v) width = %d, want %d", tt.size, tt.ratio, got, tt.want)
		}
		if img.Bounds().Dx() != img.Bounds().Dy() {
			t.Error("capture must be square")
		}
	}
}

func TestCaptureSphereFillsFrameCenter(t *testing.T) {
	r := New()
	w := world.New()
	cam := camera.NewCapture(0.3)

	img := r.Capture(w, cam, 64, 1, Material{Roughness: 0.3})

	// Center pixel is on the sphere: ambient-lit, above background.
	center := img.RGBAAt(32, 32)
	corner := img.RGBAAt(0, 0)
	if luminance(center) <= luminance(corner) {
		t.Errorf("center %v not brighter than corner %v", center, corner)
	}
}

func TestLightBrightensFacingHemisphere(t *testing.T) {
	r := New()
	w := world.New()
	cam := camera.NewCapture(0.3)

	unlit := r.Capture(w, cam, 64, 1, Material{Roughness: 0.3})

	// Light high above the sphere: the top of the image brightens far
	// more than the bottom.
	l := lighting.NewPointLight(math.Vec3{X: 1, Y: 1, Z: 1}, 1)
	l.SetPosition(math.Vec3{Y: 0.8})
	w.AddLight(l)

	lit := r.Capture(w, cam, 64, 1, Material{Roughness: 0.3})

	top := luminance(lit.RGBAAt(32, 8)) - luminance(unlit.RGBAAt(32, 8))
	bottom := luminance(lit.RGBAAt(32, 56)) - luminance(unlit.RGBAAt(32, 56))
	if top <= bottom {
		t.Errorf("top gain %d not above bottom gain %d", top, bottom)
	}
	if top <= 0 {
		t.Error("expected the lit top hemisphere to brighten")
	}
}

func TestMetalnessKillsDiffuse(t *testing.T) {
	r := New()
	w := world.New()
	cam := camera.NewCapture(0.3)
	w.SetAmbient(math.Vec3{}, 0) // Isolate the light terms

	l := lighting.NewPointLight(math.Vec3{X: 1, Y: 1, Z: 1}, 1)
	l.SetPosition(math.Vec3{X: 0.6, Z: 0.6})
	w.AddLight(l)

	dielectric := r.Capture(w, cam, 64, 1, Material{Roughness: 0.8, Metalness: 0})
	metal := r.Capture(w, cam, 64, 1, Material{Roughness: 0.8, Metalness: 1})

	// Away from the highlight, a rough metal shows less diffuse bounce
	// than a dielectric under the same light.
	p := image.Pt(24, 40)
	if luminance(metal.RGBAAt(p.X, p.Y)) >= luminance(dielectric.RGBAAt(p.X, p.Y)) {
		t.Error("expected metal to lose diffuse response off the highlight")
	}
}

func TestViewRespectsAspect(t *testing.T) {
	r := New()
	w := world.New()
	cam := camera.NewOrbit()

	img := r.View(w, cam, 120, 80, Material{Roughness: 0.3})
	if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 80 {
		t.Errorf("view bounds = %v, want 120x80", img.Bounds())
	}

	// The sphere sits in the middle of the view.
	if luminance(img.RGBAAt(60, 40)) <= luminance(img.RGBAAt(2, 2)) {
		t.Error("expected sphere at view center to be brighter than background")
	}
}

func TestRoughnessToShininessMonotonic(t *testing.T) {
	if roughnessToShininess(0.1) <= roughnessToShininess(0.5) {
		t.Error("smoother surface should map to a higher exponent")
	}
	if roughnessToShininess(0) <= 0 {
		t.Error("exponent must stay positive at zero roughness")
	}
}

func TestDrawLineAndMarkerClip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))

	// Both fully off-image and crossing shapes must not panic.
	DrawLine(img, -5, -5, 40, 20, OverlayHandle)
	DrawMarker(img, 0, 0, 3, OverlayHandle)
	DrawMarker(img, 100, 100, 3, OverlayHandle)

	if img.RGBAAt(0, 0) != OverlayHandle {
		t.Error("expected clipped marker to still paint in-bounds pixels")
	}
}
