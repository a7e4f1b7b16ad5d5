// Package lighting provides the light instances placed by the editor and
// the bookkeeping record tied to each placement.
package lighting

import (
	gomath "math"

	"github.com/wanadev/matcap-editor/pkg/math"
)

// Sample describes what a light contributes to a shaded point.
type Sample struct {
	Direction math.Vec3 // Unit vector from the shaded point to the light
	Emission  math.Vec3 // Arriving radiance, falloff applied
}

// Light is a positionable light source in the editor scene.
type Light interface {
	Position() math.Vec3
	SetPosition(p math.Vec3)
	Color() math.Vec3
	Sample(point math.Vec3) Sample
	// Target is non-nil for lights aimed at a separate scene node.
	Target() *TargetNode
}

// TargetNode is the aim point of a directional light. It is a scene node
// of its own and must be added to the scene alongside the light.
type TargetNode struct {
	Position math.Vec3
}

// falloff attenuates emission by squared distance, clamped near zero so a
// light dragged onto the surface cannot blow up the preview.
func falloff(distance float64) float64 {
	d2 := distance * distance
	if d2 < 1e-6 {
		d2 = 1e-6
	}
	return 1.0 / d2
}

// PointLight radiates uniformly in all directions.
type PointLight struct {
	position  math.Vec3
	color     math.Vec3
	intensity float64
}

// NewPointLight creates a point light.
func NewPointLight(color math.Vec3, intensity float64) *PointLight {
	return &PointLight{color: color, intensity: intensity}
}

func (l *PointLight) Position() math.Vec3     { return l.position }
func (l *PointLight) SetPosition(p math.Vec3) { l.position = p }
func (l *PointLight) Color() math.Vec3        { return l.color }
func (l *PointLight) Target() *TargetNode     { return nil }

// Sample implements Light.
func (l *PointLight) Sample(point math.Vec3) Sample {
	toLight := l.position.Sub(point)
	distance := toLight.Length()
	if distance == 0 {
		return Sample{Direction: math.Vec3{Y: 1}}
	}

	return Sample{
		Direction: toLight.Scale(1 / distance),
		Emission:  l.color.Scale(l.intensity * falloff(distance)),
	}
}

// SpotLight radiates within a cone aimed at its target node.
type SpotLight struct {
	position  math.Vec3
	color     math.Vec3
	intensity float64
	target    *TargetNode

	cosTotalWidth   float64 // Outer cone edge
	cosFalloffStart float64 // Inner cone, full intensity
}

// NewSpotLight creates a spot light aimed at the origin.
// angleDegrees is the total cone angle, deltaDegrees the falloff band.
func NewSpotLight(color math.Vec3, intensity, angleDegrees, deltaDegrees float64) *SpotLight {
	return &SpotLight{
		color:           color,
		intensity:       intensity,
		target:          &TargetNode{},
		cosTotalWidth:   gomath.Cos(angleDegrees * gomath.Pi / 180),
		cosFalloffStart: gomath.Cos((angleDegrees - deltaDegrees) * gomath.Pi / 180),
	}
}

func (l *SpotLight) Position() math.Vec3     { return l.position }
func (l *SpotLight) SetPosition(p math.Vec3) { l.position = p }
func (l *SpotLight) Color() math.Vec3        { return l.color }
func (l *SpotLight) Target() *TargetNode     { return l.target }

// Sample implements Light.
func (l *SpotLight) Sample(point math.Vec3) Sample {
	toLight := l.position.Sub(point)
	distance := toLight.Length()
	if distance == 0 {
		return Sample{Direction: math.Vec3{Y: 1}}
	}
	dir := toLight.Scale(1 / distance)

	// Angle between the aim axis and the direction to the shaded point
	aim := l.target.Position.Sub(l.position).Normalize()
	cosAngle := aim.Dot(dir.Negate())

	spot := l.spotAttenuation(cosAngle)
	return Sample{
		Direction: dir,
		Emission:  l.color.Scale(l.intensity * spot * falloff(distance)),
	}
}

// spotAttenuation is 1 inside the inner cone, 0 outside the outer cone,
// with a smooth quartic ramp between.
func (l *SpotLight) spotAttenuation(cosAngle float64) float64 {
	if cosAngle >= l.cosFalloffStart {
		return 1
	}
	if cosAngle <= l.cosTotalWidth {
		return 0
	}
	delta := (cosAngle - l.cosTotalWidth) / (l.cosFalloffStart - l.cosTotalWidth)
	return delta * delta * delta * delta
}

// Ambient is the scene-wide base illumination.
type Ambient struct {
	Color     math.Vec3
	Intensity float64
}

// Contribution returns the flat radiance the ambient term adds everywhere.
func (a Ambient) Contribution() math.Vec3 {
	return a.Color.Scale(a.Intensity)
}
