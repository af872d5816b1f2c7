package imagepkg

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/DanLigairi1978/ProID/internal/layout"
)

// tierPoints maps font tiers to point sizes at scale 1 (72 DPI, so one point
// is one base pixel).
var tierPoints = map[layout.Tier]float64{
	layout.TierDisplay: 28,
	layout.TierTitle:   22,
	layout.TierHeading: 14,
	layout.TierBody:    11,
	layout.TierCaption: 10,
	layout.TierFine:    8,
}

// minFit is the smallest fraction of the tier size a single line may shrink
// to when it does not fit its box.
const minFit = 0.5

// TierPoints returns the base point size of a tier.
func TierPoints(t layout.Tier) float64 {
	if pt, ok := tierPoints[t]; ok {
		return pt
	}
	return tierPoints[layout.TierBody]
}

func (r *Rasterizer) fontFor(n layout.Node) *opentype.Font {
	if n.Bold || n.Tier == layout.TierDisplay || n.Tier == layout.TierTitle {
		return r.bold
	}
	return r.regular
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func (r *Rasterizer) drawText(dst *image.NRGBA, rect image.Rectangle, n layout.Node, scale float64) error {
	s := n.Text
	if n.Uppercase {
		s = strings.ToUpper(s)
	}
	if s == "" || rect.Empty() || n.Fill.A == 0 {
		return nil
	}

	f := r.fontFor(n)
	size := TierPoints(n.Tier) * scale
	face, err := newFace(f, size)
	if err != nil {
		return err
	}
	defer func() { face.Close() }()

	if !n.Wrap {
		if adv := font.MeasureString(face, s).Ceil(); adv > rect.Dx() {
			fit := size * float64(rect.Dx()) / float64(adv)
			if fit < size*minFit {
				fit = size * minFit
			}
			smaller, err := newFace(f, fit)
			if err != nil {
				return err
			}
			face.Close()
			face = smaller
		}
	}

	clip, ok := dst.SubImage(rect).(*image.NRGBA)
	if !ok {
		return nil
	}
	d := &font.Drawer{Dst: clip, Src: image.NewUniform(n.Fill), Face: face}
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()

	if n.Wrap {
		y := rect.Min.Y + ascent
		for _, line := range wrapWords(face, s, rect.Dx()) {
			d.Dot = fixed.P(alignX(face, line, rect, n.Align), y)
			d.DrawString(line)
			y += m.Height.Ceil()
		}
		return nil
	}

	baseline := rect.Min.Y + (rect.Dy()-(ascent+descent))/2 + ascent
	d.Dot = fixed.P(alignX(face, s, rect, n.Align), baseline)
	d.DrawString(s)
	return nil
}

func alignX(face font.Face, s string, rect image.Rectangle, align layout.Align) int {
	adv := font.MeasureString(face, s).Ceil()
	switch align {
	case layout.AlignCenter:
		return rect.Min.X + (rect.Dx()-adv)/2
	case layout.AlignRight:
		return rect.Max.X - adv
	}
	return rect.Min.X
}

// wrapWords breaks s greedily on spaces so each line fits width. A single
// word wider than width gets a line of its own.
func wrapWords(face font.Face, s string, width int) []string {
	var (
		lines []string
		line  string
	)
	for _, word := range strings.Fields(s) {
		if line == "" {
			line = word
			continue
		}
		if font.MeasureString(face, line+" "+word).Ceil() <= width {
			line += " " + word
			continue
		}
		lines = append(lines, line)
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
