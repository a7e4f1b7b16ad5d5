// Package render shades the matcap sphere into an RGBA framebuffer. It is
// a per-pixel CPU renderer: every pixel casts one ray, and rays that
// strike the sphere get ambient plus per-light Blinn-Phong shading driven
// by the configured roughness and metalness.
package render

import (
	"image"
	"image/color"
	gomath "math"

	"github.com/wanadev/matcap-editor/internal/engine/camera"
	"github.com/wanadev/matcap-editor/internal/engine/surface"
	"github.com/wanadev/matcap-editor/internal/engine/world"
	"github.com/wanadev/matcap-editor/pkg/math"
)

// Material is the shading input passed through from configuration.
type Material struct {
	Roughness float64
	Metalness float64
}

// Base reflectance of the sphere before lighting.
var albedo = math.Vec3{X: 0.8, Y: 0.8, Z: 0.8}

// Renderer shades the render sphere. The visual sphere is the analytic
// sphere of the same radius as the pick mesh, so shading normals are
// smooth while picking stays faceted.
type Renderer struct {
	radius     float64
	background math.Vec3
}

// New creates a renderer for the editor's render sphere.
func New() *Renderer {
	return &Renderer{
		radius:     surface.RenderSphereRadius,
		background: math.Vec3{X: 0.05, Y: 0.05, Z: 0.06},
	}
}

// Capture renders the scene through the orthographic capture camera into
// a square image of size*pixelRatio pixels.
func (r *Renderer) Capture(w *world.World, cam *camera.Capture, size int, pixelRatio float64, mat Material) *image.RGBA {
	px := int(float64(size)*pixelRatio + 0.5)
	img := image.NewRGBA(image.Rect(0, 0, px, px))

	for y := 0; y < px; y++ {
		for x := 0; x < px; x++ {
			s := (float64(x) + 0.5) / float64(px)
			t := (float64(y) + 0.5) / float64(px)
			img.SetRGBA(x, y, r.tracePixel(w, cam.Ray(s, t), mat))
		}
	}
	return img
}

// View renders the scene through the interactive camera at window size.
func (r *Renderer) View(w *world.World, cam *camera.Orbit, width, height int, mat Material) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	aspect := float64(width) / float64(height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ndcX := 2*(float64(x)+0.5)/float64(width) - 1
			ndcY := -(2*(float64(y)+0.5)/float64(height) - 1)
			img.SetRGBA(x, y, r.tracePixel(w, cam.Ray(ndcX, ndcY, aspect), mat))
		}
	}
	return img
}

func (r *Renderer) tracePixel(w *world.World, ray math.Ray, mat Material) color.RGBA {
	point, ok := r.hitSphere(ray)
	if !ok {
		return toRGBA(r.background)
	}
	return toRGBA(r.shade(w, ray, point, mat))
}

// hitSphere intersects the analytic render sphere at the origin.
func (r *Renderer) hitSphere(ray math.Ray) (math.Vec3, bool) {
	oc := ray.Origin
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - r.radius*r.radius

	discriminant := halfB*halfB - c
	if discriminant < 0 {
		return math.Vec3{}, false
	}

	t := -halfB - gomath.Sqrt(discriminant)
	if t < 1e-6 {
		return math.Vec3{}, false
	}
	return ray.At(t), true
}

// shade evaluates ambient plus per-light diffuse and specular terms.
func (r *Renderer) shade(w *world.World, ray math.Ray, point math.Vec3, mat Material) math.Vec3 {
	normal := point.Normalize()
	view := ray.Direction.Negate()

	// Metals reflect through specular only
	diffuseAlbedo := albedo.Scale(1 - mat.Metalness)
	specColor := math.Vec3{X: 0.04, Y: 0.04, Z: 0.04}.Lerp(albedo, mat.Metalness)
	shininess := roughnessToShininess(mat.Roughness)

	col := w.Ambient.Contribution().Mul(albedo)

	for _, light := range w.Lights() {
		sample := light.Sample(point)

		nDotL := normal.Dot(sample.Direction)
		if nDotL <= 0 {
			continue
		}

		col = col.Add(diffuseAlbedo.Scale(nDotL).Mul(sample.Emission))

		half := sample.Direction.Add(view).Normalize()
		nDotH := normal.Dot(half)
		if nDotH > 0 {
			// Normalized Blinn-Phong keeps highlight energy roughly
			// constant as shininess rises
			strength := gomath.Pow(nDotH, shininess) * (shininess + 8) / (8 * gomath.Pi)
			col = col.Add(specColor.Scale(strength * nDotL).Mul(sample.Emission))
		}
	}

	return col
}

// roughnessToShininess maps perceptual roughness [0,1] to a Blinn-Phong
// exponent, clamped so mirror-smooth settings stay finite.
func roughnessToShininess(roughness float64) float64 {
	r := gomath.Max(roughness, 0.05)
	return 2/(r*r*r*r) - 2
}

// toRGBA clamps, gamma-corrects and packs a linear color.
func toRGBA(c math.Vec3) color.RGBA {
	encode := func(v float64) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(gomath.Sqrt(v)*255 + 0.5)
	}
	return color.RGBA{R: encode(c.X), G: encode(c.Y), B: encode(c.Z), A: 255}
}
