package math

import (
	gomath "math"
	"testing"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{2, -3, 6}
	n := v.Normalize()
	if l := n.Length(); gomath.Abs(l-1) > 1e-12 {
		t.Errorf("Vec3.Normalize().Length() = %v, want 1", l)
	}

	// Zero vector stays zero instead of producing NaN.
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero", z)
	}
}

func TestVec3AddScale(t *testing.T) {
	p := Vec3{0, 0, 0.3}
	n := Vec3{0, 0, 1}
	got := p.Add(n.Scale(0.2))
	want := Vec3{0, 0, 0.5}
	if got != want {
		t.Errorf("offset along normal = %v, want %v", got, want)
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(Vec3{1, 0, 0}, Vec3{0, 0, -2})
	got := r.At(3)
	want := Vec3{1, 0, -3}
	if got.Distance(want) > 1e-12 {
		t.Errorf("Ray.At(3) = %v, want %v", got, want)
	}
}

func TestNewRayNormalizesDirection(t *testing.T) {
	r := NewRay(Vec3{}, Vec3{0, 10, 0})
	if l := r.Direction.Length(); gomath.Abs(l-1) > 1e-12 {
		t.Errorf("direction length = %v, want 1", l)
	}
}
