// Package snapshot renders the scene through the capture camera and turns
// it into an encoded image, either republished for live preview or written
// to disk as an export.
package snapshot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/wanadev/matcap-editor/internal/config"
	"github.com/wanadev/matcap-editor/internal/engine/camera"
	"github.com/wanadev/matcap-editor/internal/engine/render"
	"github.com/wanadev/matcap-editor/internal/engine/world"
)

// Renderer is the capture-rendering dependency of the pipeline.
type Renderer interface {
	Capture(w *world.World, cam *camera.Capture, size int, pixelRatio float64, mat render.Material) *image.RGBA
}

// Result is a finished encode, delivered on the Results channel. Results
// carry the generation of the request that produced them so stale encodes
// can be dropped.
type Result struct {
	Generation uint64
	Export     bool
	PNG        []byte
	Err        error
}

// Completion is what an accepted result produced.
type Completion struct {
	Export bool
	PNG    []byte // Encoded image, for preview republishing
	Path   string // Written file, for exports
}

// Pipeline captures the scene from the canonical orthographic viewpoint.
// Renders run synchronously on the event loop; only PNG encoding runs in
// the background. A generation counter makes overlapping requests
// deterministic: the last request issued wins, earlier in-flight encodes
// are discarded on completion.
type Pipeline struct {
	world    *world.World
	renderer Renderer
	capture  *camera.Capture

	exportSize  int
	exportRatio float64
	outputDir   string
	material    render.Material

	density    float64 // Current renderer output density
	generation uint64
	results    chan Result
}

// New creates a pipeline rendering with the given renderer and camera.
func New(w *world.World, r Renderer, cam *camera.Capture, cfg *config.Config) *Pipeline {
	p := &Pipeline{
		world:    w,
		renderer: r,
		capture:  cam,
		density:  1,
		results:  make(chan Result, 8),
	}
	p.ApplyConfig(cfg)
	return p
}

// ApplyConfig re-reads capture parameters from configuration.
func (p *Pipeline) ApplyConfig(cfg *config.Config) {
	p.exportSize = cfg.Export.Size
	p.exportRatio = cfg.Export.PixelRatio
	p.outputDir = cfg.Export.OutputDir
	p.material = render.Material{
		Roughness: cfg.Material.Roughness,
		Metalness: cfg.Material.Metalness,
	}
}

// Results delivers finished encodes. The event loop must pass each one to
// Complete.
func (p *Pipeline) Results() <-chan Result {
	return p.results
}

// Density reports the current renderer output density.
func (p *Pipeline) Density() float64 {
	return p.density
}

// Snapshot captures the scene and starts an asynchronous encode. The
// indicator is hidden for the duration of the render so it can never
// appear in captured pixels. Returns the request generation.
func (p *Pipeline) Snapshot(export bool) uint64 {
	p.generation++
	generation := p.generation

	p.density = 1
	if export {
		p.density = p.exportRatio
	}

	wasVisible := p.world.Indicator.Visible
	p.world.Indicator.Visible = false
	img := p.renderer.Capture(p.world, p.capture, p.exportSize, p.density, p.material)
	p.world.Indicator.Visible = wasVisible

	go func() {
		var buf bytes.Buffer
		err := png.Encode(&buf, img)
		p.results <- Result{
			Generation: generation,
			Export:     export,
			PNG:        buf.Bytes(),
			Err:        err,
		}
	}()

	return generation
}

// Complete finalizes a finished encode. Stale results, superseded by a
// newer snapshot request, are dropped and return false. Accepted exports
// are written to the output directory and reset the density to 1;
// accepted previews return their bytes for republishing.
func (p *Pipeline) Complete(res Result) (Completion, bool, error) {
	if res.Generation < p.generation {
		return Completion{}, false, nil
	}

	// An accepted export completion always resets the density, even when
	// the encode or the write failed.
	if res.Export {
		p.density = 1
	}

	if res.Err != nil {
		return Completion{}, true, fmt.Errorf("encoding snapshot: %w", res.Err)
	}

	if !res.Export {
		return Completion{PNG: res.PNG}, true, nil
	}

	path, err := p.writeExport(res.PNG)
	if err != nil {
		return Completion{}, true, err
	}
	return Completion{Export: true, PNG: res.PNG, Path: path}, true, nil
}

// writeExport stores encoded bytes under a timestamped name.
func (p *Pipeline) writeExport(data []byte) (string, error) {
	if p.outputDir != "" {
		if err := os.MkdirAll(p.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("matcap_%s.png", timestamp)
	if p.outputDir != "" {
		filename = filepath.Join(p.outputDir, filename)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return filename, nil
}
