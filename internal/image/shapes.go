package imagepkg

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/DanLigairi1978/ProID/internal/layout"
)

// insideFunc reports whether a point, in pixels relative to the top-left of
// the node's rectangle, lies inside a shape.
type insideFunc func(x, y float64) bool

// 2x2 supersampling offsets for edge coverage.
var samples = [4][2]float64{{0.25, 0.25}, {0.75, 0.25}, {0.25, 0.75}, {0.75, 0.75}}

// coverageMask rasterizes inside over a w x h area.
func coverageMask(w, h int, inside insideFunc) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hits := 0
			for _, s := range samples {
				if inside(float64(x)+s[0], float64(y)+s[1]) {
					hits++
				}
			}
			m.Pix[y*m.Stride+x] = uint8(hits * 255 / len(samples))
		}
	}
	return m
}

// fillMasked composites src over dst inside rect, clipped by inside.
// A nil inside fills the whole rectangle.
func fillMasked(dst *image.NRGBA, rect image.Rectangle, src image.Image, sp image.Point, inside insideFunc) {
	if inside == nil {
		draw.Draw(dst, rect, src, sp, draw.Over)
		return
	}
	mask := coverageMask(rect.Dx(), rect.Dy(), inside)
	draw.DrawMask(dst, rect, src, sp, mask, image.Point{}, draw.Over)
}

// shapeFunc returns the outline of n inside rect, shrunk by inset pixels.
// Plain rectangles without inset return nil (no mask needed).
func shapeFunc(n layout.Node, rect image.Rectangle, scale, inset float64) insideFunc {
	w, h := float64(rect.Dx()), float64(rect.Dy())
	switch n.Shape {
	case layout.ShapeCircle:
		return circle(w/2, h/2, math.Min(w, h)/2-inset)
	case layout.ShapeRounded:
		return roundedRect(inset, inset, w-inset, h-inset, math.Max(n.Radius*scale-inset, 0))
	case layout.ShapeSkewed:
		shift := n.Skew * w
		return func(x, y float64) bool {
			if y < 0 || y > h || x > w {
				return false
			}
			// left edge runs from (shift, 0) down to (0, h)
			return x >= shift*(1-y/h)+inset
		}
	}
	if inset == 0 {
		return nil
	}
	return roundedRect(inset, inset, w-inset, h-inset, 0)
}

func circle(cx, cy, r float64) insideFunc {
	return func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		return r > 0 && dx*dx+dy*dy <= r*r
	}
}

func roundedRect(x0, y0, x1, y1, r float64) insideFunc {
	return func(x, y float64) bool {
		if x < x0 || x > x1 || y < y0 || y > y1 {
			return false
		}
		if r <= 0 {
			return true
		}
		cx := math.Max(x0+r, math.Min(x, x1-r))
		cy := math.Max(y0+r, math.Min(y, y1-r))
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= r*r
	}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// gradientImage renders g diagonally across rect, top-left to bottom-right.
// The returned image shares rect's coordinates.
func gradientImage(rect image.Rectangle, g layout.Gradient) *image.NRGBA {
	img := image.NewNRGBA(rect)
	from, to := toColorful(g.From), toColorful(g.To)
	// Fully transparent stops take the colour of the other stop so the
	// blend does not drift through black.
	if g.From.A == 0 {
		from = to
	}
	if g.To.A == 0 {
		to = from
	}
	w, h := float64(rect.Dx()), float64(rect.Dy())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			t := ((float64(x-rect.Min.X)+0.5)/w + (float64(y-rect.Min.Y)+0.5)/h) / 2
			c := from.BlendRgb(to, t).Clamped()
			r, gg, b := c.RGB255()
			a := float64(g.From.A) + (float64(g.To.A)-float64(g.From.A))*t
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: gg, B: b, A: uint8(math.Round(a))})
		}
	}
	return img
}
