package render

import (
	"image"
	"image/color"
)

// Overlay colors for the pick indicator and light handles.
var (
	OverlaySphere = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 255} // Green: direct sphere pick
	OverlayProbe  = color.RGBA{R: 0xff, G: 0x98, B: 0x00, A: 255} // Orange: probe redirect
	OverlayPlane  = color.RGBA{R: 0x2f, G: 0x9b, B: 0xd6, A: 255} // Blue: plane redirect
	OverlayHandle = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 255}
)

// DrawLine draws a 1px Bresenham line, clipped to the image bounds.
func DrawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		setClipped(img, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawMarker draws a filled square of the given half-size centered on a
// point, clipped to the image bounds.
func DrawMarker(img *image.RGBA, x, y, halfSize int, c color.RGBA) {
	for dy := -halfSize; dy <= halfSize; dy++ {
		for dx := -halfSize; dx <= halfSize; dx++ {
			setClipped(img, x+dx, y+dy, c)
		}
	}
}

func setClipped(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
