// Package placement turns pick results into placed lights and drives the
// drag state machine that moves them.
package placement

import (
	"fmt"

	"github.com/wanadev/matcap-editor/internal/config"
	"github.com/wanadev/matcap-editor/internal/engine/camera"
	"github.com/wanadev/matcap-editor/internal/engine/lighting"
	"github.com/wanadev/matcap-editor/internal/engine/picking"
	"github.com/wanadev/matcap-editor/internal/engine/world"
	"github.com/wanadev/matcap-editor/pkg/math"
)

// OverlayLift offsets the projected overlay anchor off the surface so the
// marker does not fight the sphere for depth.
const OverlayLift = 0.1

// Mode is the controller's drag state.
type Mode int

const (
	// Idle means no record is being moved.
	Idle Mode = iota
	// Dragging means exactly one record follows pick updates.
	Dragging
)

// Controller owns light placement: committing new lights at pick hits and
// re-projecting the active record while it is dragged.
//
// Invariant: active is non-nil iff mode is Dragging.
type Controller struct {
	world  *world.World
	picker *picking.Picker
	camera *camera.Orbit
	fabric *lighting.Fabric

	// Placement parameters, refreshed by ApplyConfig
	distance   float64
	lightType  lighting.Type
	front      bool
	exportSize float64

	mode   Mode
	active *lighting.Model

	models []*lighting.Model

	onMutation func()
}

// New creates a controller in the Idle state.
func New(w *world.World, picker *picking.Picker, cam *camera.Orbit, fabric *lighting.Fabric, cfg *config.Config) (*Controller, error) {
	c := &Controller{
		world:  w,
		picker: picker,
		camera: cam,
		fabric: fabric,
	}
	if err := c.ApplyConfig(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// ApplyConfig re-reads placement parameters from configuration.
func (c *Controller) ApplyConfig(cfg *config.Config) error {
	lightType, err := lighting.ParseType(cfg.Placement.LightType)
	if err != nil {
		return fmt.Errorf("placement config: %w", err)
	}

	c.distance = cfg.Placement.Distance
	c.lightType = lightType
	c.front = cfg.Placement.Front
	c.exportSize = float64(cfg.Export.Size)
	return nil
}

// OnMutation registers the hook fired after every scene mutation. The
// editor uses it to trigger a snapshot.
func (c *Controller) OnMutation(fn func()) {
	c.onMutation = fn
}

// Mode returns the current drag state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Active returns the record currently being dragged, if any.
func (c *Controller) Active() (*lighting.Model, bool) {
	return c.active, c.mode == Dragging
}

// Models returns every placement record in creation order.
func (c *Controller) Models() []*lighting.Model {
	return c.models
}

// Commit places a new light at the current pick hit. Without a valid hit
// this is a silent no-op returning false.
func (c *Controller) Commit() (*lighting.Model, bool) {
	hit, ok := c.picker.Current()
	if !ok {
		return nil, false
	}

	light, err := c.fabric.GetLightInstance(c.lightType)
	if err != nil {
		return nil, false
	}

	light.SetPosition(lightPosition(hit.Point, hit.Normal, c.distance, c.front))
	c.world.AddLight(light)
	if target := light.Target(); target != nil {
		c.world.AddTarget(target)
	}

	m := lighting.NewModel(light)
	m.PositionOnSphere = hit.Point
	m.SphereFaceNormal = hit.Normal
	m.Distance = c.distance
	c.projectOverlay(m)

	c.models = append(c.models, m)
	c.mutated()
	return m, true
}

// StartDrag designates a record as the one being moved. Any prior drag is
// implicitly superseded; at most one record is ever active.
func (c *Controller) StartDrag(m *lighting.Model) {
	c.mode = Dragging
	c.active = m
}

// StopDrag ends the current drag and triggers a snapshot.
func (c *Controller) StopDrag() {
	if c.mode == Idle {
		return
	}
	c.mode = Idle
	c.active = nil
	c.mutated()
}

// DragUpdate recomputes the active record from a fresh pick hit, using
// the same offset rule as Commit, and refreshes its overlay position.
// A no-op when nothing is being dragged.
func (c *Controller) DragUpdate(hit picking.Hit) bool {
	if c.mode != Dragging {
		return false
	}

	m := c.active
	m.PositionOnSphere = hit.Point
	m.SphereFaceNormal = hit.Normal
	m.SetPosition(lightPosition(hit.Point, hit.Normal, m.Distance, c.front))
	c.projectOverlay(m)

	m.Update()
	c.mutated()
	return true
}

// SetDistance recomputes a record's light position from its stored anchor
// and normal, independent of the current pick state.
func (c *Controller) SetDistance(m *lighting.Model, distance float64) {
	m.Distance = distance
	m.SetPosition(lightPosition(m.PositionOnSphere, m.SphereFaceNormal, distance, c.front))
	c.projectOverlay(m)

	m.Update()
	c.mutated()
}

// Delete removes a record's light (and spot target) from the scene. If
// the record is being dragged the controller drops back to Idle so the
// dead record stops receiving updates.
func (c *Controller) Delete(m *lighting.Model) {
	c.world.RemoveLight(m.Light)
	if target := m.Light.Target(); target != nil {
		c.world.RemoveTarget(target)
	}

	for i, existing := range c.models {
		if existing == m {
			c.models = append(c.models[:i], c.models[i+1:]...)
			break
		}
	}

	if c.active == m {
		c.mode = Idle
		c.active = nil
	}

	c.mutated()
}

// projectOverlay refreshes the record's 2D overlay position: the surface
// anchor lifted slightly along the normal, projected through the
// interactive camera into export-resolution screen space.
func (c *Controller) projectOverlay(m *lighting.Model) {
	lifted := m.PositionOnSphere.Add(m.SphereFaceNormal.Scale(OverlayLift))
	if screen, ok := c.camera.Project(lifted, c.exportSize, c.exportSize); ok {
		m.ScreenPosition = screen
	}
}

func (c *Controller) mutated() {
	if c.onMutation != nil {
		c.onMutation()
	}
}

// lightPosition derives a light's world position from a surface point and
// normal: offset along the normal, with Z negated for back placement.
// X and Y are never flipped.
func lightPosition(point, normal math.Vec3, distance float64, front bool) math.Vec3 {
	pos := point.Add(normal.Scale(distance))
	if !front {
		pos.Z = -pos.Z
	}
	return pos
}
