// Package world holds the editor scene: pickable surfaces, placed lights
// and their target nodes, ambient light, and the pick indicator.
package world

import (
	"github.com/wanadev/matcap-editor/internal/engine/indicator"
	"github.com/wanadev/matcap-editor/internal/engine/lighting"
	"github.com/wanadev/matcap-editor/internal/engine/surface"
	"github.com/wanadev/matcap-editor/pkg/math"
)

// World is the scene graph of the editor.
type World struct {
	Surfaces  *surface.Set
	Indicator *indicator.Indicator
	Ambient   lighting.Ambient

	lights  []lighting.Light
	targets []*lighting.TargetNode
}

// New builds the scene with its surfaces and a hidden indicator.
func New() *World {
	return &World{
		Surfaces:  surface.NewSet(),
		Indicator: indicator.New(),
		Ambient: lighting.Ambient{
			Color:     math.Vec3{X: 1, Y: 1, Z: 1},
			Intensity: 0.2,
		},
	}
}

// AddLight adds a light to the scene. The caller is responsible for also
// adding a target node when the light carries one.
func (w *World) AddLight(l lighting.Light) {
	w.lights = append(w.lights, l)
}

// RemoveLight removes a light from the scene. Unknown lights are ignored.
func (w *World) RemoveLight(l lighting.Light) {
	for i, existing := range w.lights {
		if existing == l {
			w.lights = append(w.lights[:i], w.lights[i+1:]...)
			return
		}
	}
}

// AddTarget adds a light target node to the scene.
func (w *World) AddTarget(t *lighting.TargetNode) {
	w.targets = append(w.targets, t)
}

// RemoveTarget removes a target node from the scene.
func (w *World) RemoveTarget(t *lighting.TargetNode) {
	for i, existing := range w.targets {
		if existing == t {
			w.targets = append(w.targets[:i], w.targets[i+1:]...)
			return
		}
	}
}

// Lights returns the placed lights in placement order.
func (w *World) Lights() []lighting.Light {
	return w.lights
}

// SetAmbient applies ambient light color and intensity.
func (w *World) SetAmbient(color math.Vec3, intensity float64) {
	w.Ambient = lighting.Ambient{Color: color, Intensity: intensity}
}
