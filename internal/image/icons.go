package imagepkg

import (
	"fmt"
	"image"
	"math"

	"github.com/DanLigairi1978/ProID/internal/layout"
)

func (p *painter) drawIcon(dst *image.NRGBA, rect image.Rectangle, n layout.Node) error {
	if rect.Empty() || n.Fill.A == 0 {
		return nil
	}
	switch n.Icon {
	case layout.IconQR:
		return drawQRMarker(dst, rect, n.Payload, n.Fill)
	case layout.IconTwitter:
		drawTwitter(dst, rect, n)
	case layout.IconInstagram:
		drawInstagram(dst, rect, n)
	default:
		return fmt.Errorf("unknown icon %q", n.Icon)
	}
	return nil
}

// drawTwitter is a filled disc with a light notch, sized to the box.
func drawTwitter(dst *image.NRGBA, rect image.Rectangle, n layout.Node) {
	w, h := float64(rect.Dx()), float64(rect.Dy())
	r := math.Min(w, h) / 2
	disc := circle(w/2, h/2, r)
	notch := circle(w/2+r*0.25, h/2-r*0.2, r*0.35)
	fillMasked(dst, rect, image.NewUniform(n.Fill), image.Point{}, func(x, y float64) bool {
		return disc(x, y) && !notch(x, y)
	})
}

// drawInstagram is the camera glyph: a rounded square ring, a lens ring and
// a flash dot.
func drawInstagram(dst *image.NRGBA, rect image.Rectangle, n layout.Node) {
	w, h := float64(rect.Dx()), float64(rect.Dy())
	side := math.Min(w, h)
	x0, y0 := (w-side)/2, (h-side)/2
	stroke := math.Max(side*0.12, 1)

	outer := roundedRect(x0, y0, x0+side, y0+side, side*0.3)
	inner := roundedRect(x0+stroke, y0+stroke, x0+side-stroke, y0+side-stroke, math.Max(side*0.3-stroke, 0))
	lensOuter := circle(w/2, h/2, side*0.24)
	lensInner := circle(w/2, h/2, side*0.24-stroke)
	flash := circle(x0+side*0.75, y0+side*0.25, side*0.07)

	fillMasked(dst, rect, image.NewUniform(n.Fill), image.Point{}, func(x, y float64) bool {
		return (outer(x, y) && !inner(x, y)) || (lensOuter(x, y) && !lensInner(x, y)) || flash(x, y)
	})
}
