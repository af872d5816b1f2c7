package imagepkg

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/DanLigairi1978/ProID/internal/cards"
	"github.com/DanLigairi1978/ProID/internal/layout"
)

// ExportScale is the scale used for exported artifacts.
const ExportScale = 3

// Rasterizer draws resolved layouts into pixel buffers. It only holds
// immutable parsed fonts and can be shared between goroutines.
type Rasterizer struct {
	loader  Loader
	regular *opentype.Font
	bold    *opentype.Font
}

// NewRasterizer parses the embedded Go fonts. A nil loader disables image
// nodes with a source (they fail to rasterize).
func NewRasterizer(loader Loader) (*Rasterizer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Rasterizer{loader: loader, regular: regular, bold: bold}, nil
}

// Frame is one rasterized face.
type Frame struct {
	Face  layout.Face
	Scale float64
	Image *image.NRGBA
	// Boxes holds the pixel rectangle of every node by ID.
	Boxes map[string]image.Rectangle
}

// PixelRect maps a fractional box onto a size x scale pixel canvas.
func PixelRect(b layout.Box, size cards.Size, scale float64) image.Rectangle {
	w := float64(size.Width) * scale
	h := float64(size.Height) * scale
	return image.Rect(
		int(math.Round(b.X*w)),
		int(math.Round(b.Y*h)),
		int(math.Round((b.X+b.W)*w)),
		int(math.Round((b.Y+b.H)*h)),
	)
}

// Rasterize draws l on a size.Width*scale x size.Height*scale canvas. Nodes
// are painted in document order: a parent before its children, later
// siblings over earlier ones.
func (r *Rasterizer) Rasterize(ctx context.Context, l layout.Layout, size cards.Size, scale float64) (*Frame, error) {
	if scale < 1 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, &RasterizationError{Face: l.Face, Err: fmt.Errorf("scale %v must be >= 1", scale)}
	}
	if size.Width <= 0 || size.Height <= 0 {
		return nil, &RasterizationError{Face: l.Face, Err: fmt.Errorf("invalid pixel size %s", size)}
	}

	images, err := r.loadImages(ctx, l)
	if err != nil {
		return nil, err
	}

	w := int(math.Round(float64(size.Width) * scale))
	h := int(math.Round(float64(size.Height) * scale))
	canvas := imaging.New(w, h, color.NRGBA{})

	frame := &Frame{
		Face:  l.Face,
		Scale: scale,
		Image: canvas,
		Boxes: map[string]image.Rectangle{},
	}
	p := painter{r: r, ctx: ctx, face: l.Face, size: size, scale: scale, images: images, frame: frame}
	if err := p.paint(l.Root); err != nil {
		return nil, err
	}
	return frame, nil
}

// loadImages fetches and decodes every image source up front so a bad
// source fails the face before anything is drawn.
func (r *Rasterizer) loadImages(ctx context.Context, l layout.Layout) (map[string]image.Image, error) {
	var nodes []layout.Node
	l.Walk(func(n layout.Node) {
		if n.Kind == layout.KindImage && n.Source != "" {
			nodes = append(nodes, n)
		}
	})

	images := make(map[string]image.Image, len(nodes))
	for _, n := range nodes {
		if r.loader == nil {
			return nil, &RasterizationError{Face: l.Face, Node: n.ID, Err: fmt.Errorf("no image loader configured")}
		}
		img, err := r.loader.Load(ctx, n.Source)
		if err != nil {
			return nil, &RasterizationError{Face: l.Face, Node: n.ID, Err: err}
		}
		images[n.ID] = img
	}
	return images, nil
}

type painter struct {
	r      *Rasterizer
	ctx    context.Context
	face   layout.Face
	size   cards.Size
	scale  float64
	images map[string]image.Image
	frame  *Frame
}

func (p *painter) fail(n layout.Node, err error) error {
	return &RasterizationError{Face: p.face, Node: n.ID, Err: err}
}

func (p *painter) paint(n layout.Node) error {
	if err := p.ctx.Err(); err != nil {
		return p.fail(n, err)
	}
	rect := PixelRect(n.Box, p.size, p.scale)
	p.frame.Boxes[n.ID] = rect

	dst := p.frame.Image
	switch n.Kind {
	case layout.KindRect:
		p.drawRect(dst, rect, n)
	case layout.KindImage:
		p.drawImage(dst, rect, n)
	case layout.KindText:
		if err := p.r.drawText(dst, rect, n, p.scale); err != nil {
			return p.fail(n, err)
		}
	case layout.KindIcon:
		if err := p.drawIcon(dst, rect, n); err != nil {
			return p.fail(n, err)
		}
	default:
		return p.fail(n, fmt.Errorf("unknown node kind %q", n.Kind))
	}

	for _, c := range n.Children {
		if err := p.paint(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *painter) drawRect(dst *image.NRGBA, rect image.Rectangle, n layout.Node) {
	if rect.Empty() {
		return
	}
	inside := shapeFunc(n, rect, p.scale, 0)
	switch {
	case n.Gradient != nil:
		fillMasked(dst, rect, gradientImage(rect, *n.Gradient), rect.Min, inside)
	case n.Fill.A > 0:
		fillMasked(dst, rect, image.NewUniform(n.Fill), image.Point{}, inside)
	}
	p.drawStroke(dst, rect, n)
}

// drawImage cover-fits the decoded source into the box and clips it to the
// node's shape. Nodes without a source are skipped.
func (p *painter) drawImage(dst *image.NRGBA, rect image.Rectangle, n layout.Node) {
	img, ok := p.images[n.ID]
	if !ok || rect.Empty() {
		return
	}
	fitted := imaging.Fill(img, rect.Dx(), rect.Dy(), imaging.Center, imaging.Lanczos)
	fillMasked(dst, rect, fitted, fitted.Bounds().Min, shapeFunc(n, rect, p.scale, 0))
	p.drawStroke(dst, rect, n)
}

func (p *painter) drawStroke(dst *image.NRGBA, rect image.Rectangle, n layout.Node) {
	if n.StrokeWidth <= 0 || n.Stroke.A == 0 {
		return
	}
	outer := shapeFunc(n, rect, p.scale, 0)
	inner := shapeFunc(n, rect, p.scale, n.StrokeWidth*p.scale)
	ring := func(x, y float64) bool { return outer(x, y) && !inner(x, y) }
	fillMasked(dst, rect, image.NewUniform(n.Stroke), image.Point{}, ring)
}
