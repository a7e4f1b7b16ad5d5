package lighting

import (
	"fmt"

	"github.com/wanadev/matcap-editor/pkg/math"
)

// Type selects which light the fabric builds.
type Type string

const (
	TypePoint Type = "point"
	TypeSpot  Type = "spot"
)

// ParseType validates a configured light type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypePoint, TypeSpot:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown light type %q", s)
}

// Defaults for freshly placed lights.
const (
	defaultIntensity = 0.6
	spotAngleDeg     = 45.0
	spotDeltaDeg     = 12.0
)

// Fabric builds light instances by type.
type Fabric struct{}

// NewFabric creates a light factory.
func NewFabric() *Fabric {
	return &Fabric{}
}

// GetLightInstance builds a white light of the requested type. A spot
// light comes with a target node that the caller must also add to the
// scene.
func (f *Fabric) GetLightInstance(t Type) (Light, error) {
	white := math.Vec3{X: 1, Y: 1, Z: 1}

	switch t {
	case TypePoint:
		return NewPointLight(white, defaultIntensity), nil
	case TypeSpot:
		return NewSpotLight(white, defaultIntensity, spotAngleDeg, spotDeltaDeg), nil
	}
	return nil, fmt.Errorf("unknown light type %q", t)
}
