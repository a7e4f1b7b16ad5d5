package world

import (
	"testing"

	"github.com/wanadev/matcap-editor/internal/engine/lighting"
	"github.com/wanadev/matcap-editor/pkg/math"
)

func TestAddRemoveLight(t *testing.T) {
	w := New()

	a := lighting.NewPointLight(math.Vec3{X: 1, Y: 1, Z: 1}, 1)
	b := lighting.NewPointLight(math.Vec3{X: 1, Y: 1, Z: 1}, 1)

	w.AddLight(a)
	w.AddLight(b)
	if len(w.Lights()) != 2 {
		t.Fatalf("expected 2 lights, got %d", len(w.Lights()))
	}

	w.RemoveLight(a)
	if len(w.Lights()) != 1 || w.Lights()[0] != b {
		t.Errorf("expected only light b to remain")
	}

	// Removing an unknown light is a no-op.
	w.RemoveLight(a)
	if len(w.Lights()) != 1 {
		t.Errorf("expected 1 light after duplicate removal, got %d", len(w.Lights()))
	}
}

func TestSpotTargetLifecycle(t *testing.T) {
	w := New()

	spot := lighting.NewSpotLight(math.Vec3{X: 1, Y: 1, Z: 1}, 1, 45, 10)
	w.AddLight(spot)
	w.AddTarget(spot.Target())

	if len(w.targets) != 1 {
		t.Fatalf("expected 1 target node, got %d", len(w.targets))
	}

	w.RemoveLight(spot)
	w.RemoveTarget(spot.Target())
	if len(w.targets) != 0 {
		t.Errorf("expected no target nodes, got %d", len(w.targets))
	}
}

func TestNewWorldDefaults(t *testing.T) {
	w := New()

	if w.Surfaces == nil || w.Surfaces.RenderSphere == nil {
		t.Fatal("expected surfaces to be built")
	}
	if w.Indicator.Visible {
		t.Error("indicator should start hidden")
	}
	if w.Ambient.Intensity != 0.2 {
		t.Errorf("expected default ambient intensity 0.2, got %v", w.Ambient.Intensity)
	}
}
