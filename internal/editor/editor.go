// Package editor runs the interactive matcap editing session: it owns the
// scene, translates pointer input into light placement, and drives the
// snapshot pipeline.
package editor

import (
	"bytes"
	"fmt"
	"image"
	stddraw "image/draw"
	"image/png"
	"time"

	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"

	"github.com/wanadev/matcap-editor/internal/config"
	"github.com/wanadev/matcap-editor/internal/engine/camera"
	"github.com/wanadev/matcap-editor/internal/engine/indicator"
	"github.com/wanadev/matcap-editor/internal/engine/input"
	"github.com/wanadev/matcap-editor/internal/engine/lighting"
	"github.com/wanadev/matcap-editor/internal/engine/picking"
	"github.com/wanadev/matcap-editor/internal/engine/placement"
	"github.com/wanadev/matcap-editor/internal/engine/render"
	"github.com/wanadev/matcap-editor/internal/engine/snapshot"
	"github.com/wanadev/matcap-editor/internal/engine/surface"
	"github.com/wanadev/matcap-editor/internal/engine/window"
	"github.com/wanadev/matcap-editor/internal/engine/world"
	"github.com/wanadev/matcap-editor/internal/logger"
	"github.com/wanadev/matcap-editor/pkg/math"
)

const (
	framePause    = 8 * time.Millisecond
	previewMargin = 8
)

// Editor wires the engine together and runs the main loop.
type Editor struct {
	cfg *config.Config

	window     *window.Window
	input      *input.Input
	world      *world.World
	orbit      *camera.Orbit
	capture    *camera.Capture
	renderer   *render.Renderer
	picker     *picking.Picker
	controller *placement.Controller
	pipeline   *snapshot.Pipeline

	commands chan Command
	events   chan Event

	preview   *image.RGBA
	pointerIn bool
	orbiting  bool
	viewDirty bool
	running   bool
}

// New builds the scene and opens the window.
func New(cfg *config.Config) (*Editor, error) {
	e := &Editor{
		cfg:      cfg,
		world:    world.New(),
		orbit:    camera.NewOrbit(),
		capture:  camera.NewCapture(surface.RenderSphereRadius),
		renderer: render.New(),
		input:    input.New(),
		commands: make(chan Command, 16),
		events:   make(chan Event, 16),
	}

	e.world.SetAmbient(math.Vec3{
		X: cfg.Ambient.Color[0],
		Y: cfg.Ambient.Color[1],
		Z: cfg.Ambient.Color[2],
	}, cfg.Ambient.Intensity)

	e.picker = picking.New(e.world, e.orbit, cfg.Export.Size, cfg.Graphics.PixelRatio)
	e.pipeline = snapshot.New(e.world, e.renderer, e.capture, cfg)

	var err error
	e.controller, err = placement.New(e.world, e.picker, e.orbit, lighting.NewFabric(), cfg)
	if err != nil {
		return nil, fmt.Errorf("placement setup failed: %w", err)
	}
	e.controller.OnMutation(func() {
		e.pipeline.Snapshot(false)
		e.viewDirty = true
	})

	e.window, err = window.New(window.Config{
		Title:  "Matcap Editor",
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Commands is the channel an embedding UI sends requests on.
func (e *Editor) Commands() chan<- Command {
	return e.commands
}

// Events is the channel the editor publishes notifications on.
func (e *Editor) Events() <-chan Event {
	return e.events
}

// Run drives the main loop until quit.
func (e *Editor) Run() error {
	defer e.window.Close()

	e.pipeline.Snapshot(false)
	e.publish(ContentReadyEvent{})
	e.viewDirty = true
	e.pointerIn = true
	e.running = true

	logger.Info("editor running")

	for e.running {
		e.input.Update()
		for _, ev := range e.input.Events() {
			e.handleInput(ev)
		}

		e.drainCommands()
		e.drainResults()

		if e.viewDirty {
			if err := e.present(); err != nil {
				return err
			}
			e.viewDirty = false
		}

		time.Sleep(framePause)
	}

	return nil
}

func (e *Editor) handleInput(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		e.running = false

	case input.EventKeyDown:
		switch ev.Key {
		case input.KeyEscape:
			e.running = false
		case input.KeyE:
			e.pipeline.Snapshot(true)
		case input.KeyS:
			e.pipeline.Snapshot(false)
		case input.KeyDelete:
			if m, ok := e.controller.Active(); ok {
				e.controller.Delete(m)
			}
		}

	case input.EventWindowResize:
		e.viewDirty = true

	case input.EventPointerEnter:
		e.pointerIn = true

	case input.EventPointerLeave:
		// Leaving the window freezes an active drag rather than ending
		// it; the light stays where the last hit put it.
		e.pointerIn = false
		e.orbiting = false

	case input.EventMouseMove:
		if !e.pointerIn {
			return
		}
		if e.orbiting {
			e.orbit.HandleDrag(float64(ev.DeltaX), float64(ev.DeltaY))
			e.viewDirty = true
			return
		}
		winW, winH := e.window.Size()
		px, py := canvasCoords(ev.X, ev.Y, winW, winH, e.cfg.Export.Size, e.cfg.Graphics.PixelRatio)
		hit, ok := e.picker.Pick(px, py)
		if !ok {
			return
		}
		e.viewDirty = true
		if e.controller.Mode() == placement.Dragging {
			e.controller.DragUpdate(hit)
		}

	case input.EventMouseDown:
		switch ev.Button {
		case input.ButtonLeft:
			if m, ok := e.controller.Commit(); ok {
				logger.Sugar.Debugw("light committed",
					"type", e.cfg.Placement.LightType,
					"distance", m.Distance,
					"front", e.cfg.Placement.Front,
				)
				e.publish(LightAddedEvent{Model: m})
			}
		case input.ButtonRight:
			e.orbiting = true
		}

	case input.EventMouseUp:
		switch ev.Button {
		case input.ButtonLeft:
			e.controller.StopDrag()
			e.revealLightHandles()
		case input.ButtonRight:
			e.orbiting = false
		}

	case input.EventMouseWheel:
		e.orbit.HandleZoom(ev.WheelY)
		e.viewDirty = true
	}
}

// revealLightHandles persists the one-shot handle reveal: once the user
// has released a pointer press the handle overlay stays on across runs.
func (e *Editor) revealLightHandles() {
	if e.cfg.UI.ShowLightHandles {
		return
	}
	e.cfg.UI.ShowLightHandles = true
	e.viewDirty = true
	if err := e.cfg.Save(); err != nil {
		logger.Warn("config save failed", zap.Error(err))
	}
}

// canvasCoords maps a window pixel position into the square pick canvas,
// folding the window aspect into the X coordinate so picks line up with
// the rendered view. pixelRatio is the device pixel ratio of the pointer
// stream; the canvas spans exportSize/pixelRatio pointer units.
func canvasCoords(x, y, winW, winH, exportSize int, pixelRatio float64) (float64, float64) {
	aspect := float64(winW) / float64(winH)
	canvas := float64(exportSize) / pixelRatio

	ndcX := (2*float64(x)/float64(winW) - 1) * aspect
	px := (ndcX + 1) * canvas / 2
	py := float64(y) * canvas / float64(winH)
	return px, py
}

func (e *Editor) drainCommands() {
	for {
		select {
		case cmd := <-e.commands:
			e.handleCommand(cmd)
		default:
			return
		}
	}
}

func (e *Editor) handleCommand(cmd Command) {
	logger.Debug("command", zap.String("type", cmd.CommandType()))

	switch c := cmd.(type) {
	case AmbientChangedCommand:
		e.cfg.Ambient.Color = c.Color
		e.cfg.Ambient.Intensity = c.Intensity
		e.world.SetAmbient(math.Vec3{X: c.Color[0], Y: c.Color[1], Z: c.Color[2]}, c.Intensity)
		e.pipeline.Snapshot(false)
		e.viewDirty = true

	case ConfigAppliedCommand:
		e.applyConfig()

	case SnapshotRequestedCommand:
		e.pipeline.Snapshot(false)

	case ExportRequestedCommand:
		e.pipeline.Snapshot(true)

	case DistanceChangedCommand:
		e.controller.SetDistance(c.Model, c.Distance)

	case DeleteLightCommand:
		e.controller.Delete(c.Model)

	case DragStartedCommand:
		e.controller.StartDrag(c.Model)

	case DragStoppedCommand:
		e.controller.StopDrag()
	}
}

// applyConfig pushes the current configuration into the engine components
// that cache parts of it.
func (e *Editor) applyConfig() {
	e.picker.ApplyConfig(e.cfg.Export.Size, e.cfg.Graphics.PixelRatio)
	e.pipeline.ApplyConfig(e.cfg)
	if err := e.controller.ApplyConfig(e.cfg); err != nil {
		logger.Warn("config apply failed", zap.Error(err))
	}
	e.world.SetAmbient(math.Vec3{
		X: e.cfg.Ambient.Color[0],
		Y: e.cfg.Ambient.Color[1],
		Z: e.cfg.Ambient.Color[2],
	}, e.cfg.Ambient.Intensity)
	e.pipeline.Snapshot(false)
	e.viewDirty = true
}

func (e *Editor) drainResults() {
	for {
		select {
		case res := <-e.pipeline.Results():
			comp, ok, err := e.pipeline.Complete(res)
			if err != nil {
				logger.Error("snapshot failed", zap.Error(err))
				continue
			}
			if !ok {
				continue
			}
			if comp.Export {
				logger.Sugar.Infow("matcap exported", "path", comp.Path)
				e.publish(ExportWrittenEvent{Path: comp.Path})
				continue
			}
			e.updatePreview(comp.PNG)
			e.publish(PreviewUpdatedEvent{PNG: comp.PNG})
		default:
			return
		}
	}
}

// updatePreview decodes the snapshot and scales it down for the corner
// inset.
func (e *Editor) updatePreview(data []byte) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		logger.Error("preview decode failed", zap.Error(err))
		return
	}

	size := int(float64(e.cfg.Export.Size) * e.cfg.Graphics.DisplayRatio / e.cfg.Export.PixelRatio)
	if size < 1 {
		size = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	e.preview = dst
	e.viewDirty = true
}

func (e *Editor) present() error {
	w, h := e.window.Size()

	frame := e.renderer.View(e.world, e.orbit, w, h, render.Material{
		Roughness: e.cfg.Material.Roughness,
		Metalness: e.cfg.Material.Metalness,
	})

	e.drawIndicator(frame, float64(w), float64(h))
	e.drawHandles(frame, float64(w), float64(h))
	e.drawPreview(frame)

	return e.window.Present(frame)
}

func (e *Editor) drawIndicator(frame *image.RGBA, w, h float64) {
	ind := e.world.Indicator
	if !ind.Visible {
		return
	}

	base, okA := e.orbit.Project(ind.Position, w, h)
	tip, okB := e.orbit.Project(ind.Tip(), w, h)
	if !okA || !okB {
		return
	}

	c := render.OverlaySphere
	switch ind.Color {
	case indicator.ColorProbe:
		c = render.OverlayProbe
	case indicator.ColorPlane:
		c = render.OverlayPlane
	}
	render.DrawLine(frame, int(base.X), int(base.Y), int(tip.X), int(tip.Y), c)
}

func (e *Editor) drawHandles(frame *image.RGBA, w, h float64) {
	if !e.cfg.UI.ShowLightHandles {
		return
	}

	for _, m := range e.controller.Models() {
		anchor := m.PositionOnSphere.Add(m.SphereFaceNormal.Scale(placement.OverlayLift))
		p, ok := e.orbit.Project(anchor, w, h)
		if !ok {
			continue
		}
		render.DrawMarker(frame, int(p.X), int(p.Y), 3, render.OverlayHandle)
	}
}

func (e *Editor) drawPreview(frame *image.RGBA) {
	if e.preview == nil {
		return
	}

	fb := frame.Bounds()
	pb := e.preview.Bounds()
	x0 := fb.Dx() - pb.Dx() - previewMargin
	y0 := previewMargin
	if x0 < 0 {
		return
	}

	dst := image.Rect(x0, y0, x0+pb.Dx(), y0+pb.Dy())
	stddraw.Draw(frame, dst, e.preview, pb.Min, stddraw.Src)
	render.DrawLine(frame, x0-1, y0-1, x0+pb.Dx(), y0-1, render.OverlayHandle)
	render.DrawLine(frame, x0-1, y0+pb.Dy(), x0+pb.Dx(), y0+pb.Dy(), render.OverlayHandle)
	render.DrawLine(frame, x0-1, y0-1, x0-1, y0+pb.Dy(), render.OverlayHandle)
	render.DrawLine(frame, x0+pb.Dx(), y0-1, x0+pb.Dx(), y0+pb.Dy(), render.OverlayHandle)
}

func (e *Editor) publish(ev Event) {
	select {
	case e.events <- ev:
	default:
		logger.Debug("event dropped", zap.String("type", ev.EventType()))
	}
}
