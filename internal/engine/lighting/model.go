package lighting

import "github.com/wanadev/matcap-editor/pkg/math"

// Model is the editor's bookkeeping record for one placed light: the
// surface anchor it was committed at, the normal there, the offset
// distance, and the derived overlay position. It maps 1:1 to a Light.
type Model struct {
	Light Light

	PositionOnSphere math.Vec3
	SphereFaceNormal math.Vec3
	Distance         float64
	ScreenPosition   math.Vec2

	onUpdate func(*Model)
}

// NewModel wraps a light instance in a placement record.
func NewModel(light Light) *Model {
	return &Model{Light: light}
}

// OnUpdate registers the notification hook fired by Update. Overlay UI
// subscribes here to follow the record during drags.
func (m *Model) OnUpdate(fn func(*Model)) {
	m.onUpdate = fn
}

// Update notifies the registered hook that fields changed.
func (m *Model) Update() {
	if m.onUpdate != nil {
		m.onUpdate(m)
	}
}

// Position returns the light's world position.
func (m *Model) Position() math.Vec3 {
	return m.Light.Position()
}

// SetPosition moves the light.
func (m *Model) SetPosition(p math.Vec3) {
	m.Light.SetPosition(p)
}
