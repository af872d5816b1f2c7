// Package pipeline runs the full card export: layout, rasterization, export
// and delivery, ending in a single status message for the user.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/DanLigairi1978/ProID/internal/cards"
	"github.com/DanLigairi1978/ProID/internal/delivery"
	"github.com/DanLigairi1978/ProID/internal/export"
	imagepkg "github.com/DanLigairi1978/ProID/internal/image"
	"github.com/DanLigairi1978/ProID/internal/layout"
)

// Status messages shown to the user.
const (
	MsgInvalidConfig = "Error: Invalid card configuration."
	MsgImagesFailed  = "Error: Could not generate images."
	MsgPdfFailed     = "Error: Could not generate PDF."
	MsgImagesNotSave = "Error: Could not save JPEGs."
	MsgPdfNotSave    = "Error: Could not save PDF."
)

// Rasterizer is the part of imagepkg.Rasterizer the pipeline needs.
type Rasterizer interface {
	Rasterize(ctx context.Context, l layout.Layout, size cards.Size, scale float64) (*imagepkg.Frame, error)
}

// Status is the outcome of one export attempt. Err keeps the diagnostic
// behind Message.
type Status struct {
	Message string
	Err     error
}

func (s Status) OK() bool { return s.Err == nil }

type Pipeline struct {
	Raster      Rasterizer
	Delivery    delivery.Deliverer
	Scale       float64
	JPEGQuality int
	Log         *log.Logger
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.Log != nil {
		p.Log.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (p *Pipeline) scale() float64 {
	if p.Scale <= 0 {
		return imagepkg.ExportScale
	}
	return p.Scale
}

// Faces holds both rasterized faces of one card.
type Faces struct {
	Front, Back *imagepkg.Frame
}

// Render resolves and rasterizes front then back. Any failure aborts before
// the other face is used, so nothing is exported from a half-rendered card.
func (p *Pipeline) Render(ctx context.Context, pd cards.PlayerData, cfg cards.CardConfig) (Faces, error) {
	if err := cfg.Validate(); err != nil {
		return Faces{}, err
	}
	if err := pd.Validate(); err != nil {
		return Faces{}, err
	}
	size, err := cfg.Format.Dimensions()
	if err != nil {
		return Faces{}, err
	}
	fl, err := layout.ResolveFront(pd, cfg)
	if err != nil {
		return Faces{}, err
	}
	bl, err := layout.ResolveBack(pd, cfg)
	if err != nil {
		return Faces{}, err
	}

	var out Faces
	if out.Front, err = p.Raster.Rasterize(ctx, fl, size, p.scale()); err != nil {
		return Faces{}, wrapRaster(layout.Front, err)
	}
	if out.Back, err = p.Raster.Rasterize(ctx, bl, size, p.scale()); err != nil {
		return Faces{}, wrapRaster(layout.Back, err)
	}
	return out, nil
}

func wrapRaster(face layout.Face, err error) error {
	var rerr *imagepkg.RasterizationError
	if errors.As(err, &rerr) {
		return err
	}
	return &imagepkg.RasterizationError{Face: face, Err: err}
}

func (p *Pipeline) deliver(ctx context.Context, arts ...export.Artifact) error {
	for i, a := range arts {
		if err := p.Delivery.Deliver(ctx, a); err != nil {
			p.retract(arts[:i])
			var derr *delivery.DeliveryError
			if errors.As(err, &derr) {
				return err
			}
			return &delivery.DeliveryError{Name: a.Name, Err: err}
		}
	}
	return nil
}

// retract takes back artifacts that were delivered before a later one
// failed. It runs even when ctx is already cancelled.
func (p *Pipeline) retract(done []export.Artifact) {
	r, ok := p.Delivery.(delivery.Retractor)
	if !ok {
		return
	}
	for _, a := range done {
		if err := r.Retract(context.Background(), a); err != nil {
			p.logf("pipeline: retract %s: %v", a.Name, err)
		}
	}
}

// RenderAndExportImages exports the card as two JPEGs and delivers them.
func (p *Pipeline) RenderAndExportImages(ctx context.Context, pd cards.PlayerData, cfg cards.CardConfig) Status {
	r, err := p.Render(ctx, pd, cfg)
	if err != nil {
		return p.fail(export.KindImage, err)
	}
	pair, err := export.ExportJpegPair(r.Front.Image, r.Back.Image, export.BaseName(pd.FullName), p.JPEGQuality)
	if err != nil {
		return p.fail(export.KindImage, err)
	}
	if err := p.deliver(ctx, pair.Artifacts()...); err != nil {
		return p.fail(export.KindImage, err)
	}
	p.logf("pipeline: exported %s, %s", pair.Front.Name, pair.Back.Name)
	return Status{Message: p.Delivery.Notice(export.KindImage)}
}

// RenderAndExportPdf exports both faces on one PDF page and delivers it.
func (p *Pipeline) RenderAndExportPdf(ctx context.Context, pd cards.PlayerData, cfg cards.CardConfig) Status {
	r, err := p.Render(ctx, pd, cfg)
	if err != nil {
		return p.fail(export.KindPDF, err)
	}
	doc, err := export.ExportPdf(r.Front.Image, r.Back.Image, cfg.Format, export.BaseName(pd.FullName))
	if err != nil {
		return p.fail(export.KindPDF, err)
	}
	if err := p.deliver(ctx, doc); err != nil {
		return p.fail(export.KindPDF, err)
	}
	p.logf("pipeline: exported %s", doc.Name)
	return Status{Message: p.Delivery.Notice(export.KindPDF)}
}

func (p *Pipeline) fail(kind export.Kind, err error) Status {
	p.logf("pipeline: %s export failed: %v", kind, err)
	return Status{Message: Message(kind, err), Err: err}
}

// Message maps an export failure to the text shown to the user.
func Message(kind export.Kind, err error) string {
	var cerr *cards.ConfigurationError
	var derr *delivery.DeliveryError
	switch {
	case errors.As(err, &cerr):
		return MsgInvalidConfig
	case errors.As(err, &derr):
		if kind == export.KindPDF {
			return MsgPdfNotSave
		}
		return MsgImagesNotSave
	case kind == export.KindPDF:
		return MsgPdfFailed
	default:
		return MsgImagesFailed
	}
}

// String is handy for logs.
func (s Status) String() string {
	if s.Err != nil {
		return fmt.Sprintf("%s (%v)", s.Message, s.Err)
	}
	return s.Message
}
