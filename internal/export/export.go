// Package export packages rasterized card faces into JPEG and PDF artifacts.
package export

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"

	"github.com/DanLigairi1978/ProID/internal/cards"
)

// DefaultJPEGQuality matches a 0.95 encoder quality.
const DefaultJPEGQuality = 95

// PDF page margins, in base card pixels (one pixel per PDF point).
const (
	MarginLeft = 20.0
	MarginTop  = 30.0
	Gutter     = 20.0
)

// BaseName derives the artifact name stem from the holder's full name.
func BaseName(fullName string) string {
	return strings.ReplaceAll(fullName, " ", "_")
}

func FrontJPEGName(base string) string { return base + "_ID_Front.jpg" }
func BackJPEGName(base string) string  { return base + "_ID_Back.jpg" }
func PDFName(base string) string       { return base + "_ID_Card.pdf" }

// ExportJpegPair encodes both faces independently. quality <= 0 selects
// DefaultJPEGQuality.
func ExportJpegPair(front, back image.Image, baseName string, quality int) (JpegPair, error) {
	if front == nil || back == nil {
		return JpegPair{}, fmt.Errorf("export jpeg: both faces are required")
	}
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	f, err := encodeJPEG(front, quality)
	if err != nil {
		return JpegPair{}, fmt.Errorf("export front jpeg: %w", err)
	}
	b, err := encodeJPEG(back, quality)
	if err != nil {
		return JpegPair{}, fmt.Errorf("export back jpeg: %w", err)
	}
	return JpegPair{
		Front: Artifact{Name: FrontJPEGName(baseName), Kind: KindImage, ContentType: "image/jpeg", Data: f},
		Back:  Artifact{Name: BackJPEGName(baseName), Kind: KindImage, ContentType: "image/jpeg", Data: b},
	}, nil
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Rect is a placement on the PDF page, in points.
type Rect struct {
	X, Y, W, H float64
}

// Geometry is the PDF page layout for a card format.
type Geometry struct {
	PageW, PageH float64
	Front, Back  Rect
}

// PageGeometry places both faces side by side, front on the left.
func PageGeometry(format cards.Format) (Geometry, error) {
	size, err := format.Dimensions()
	if err != nil {
		return Geometry{}, err
	}
	w, h := float64(size.Width), float64(size.Height)
	return Geometry{
		PageW: MarginLeft + w + Gutter + w + MarginLeft,
		PageH: MarginTop + h + MarginTop,
		Front: Rect{X: MarginLeft, Y: MarginTop, W: w, H: h},
		Back:  Rect{X: MarginLeft + w + Gutter, Y: MarginTop, W: w, H: h},
	}, nil
}

// compressPDF is switched off in tests so page content can be inspected.
var compressPDF = true

// ExportPdf lays both faces out on one landscape page. The faces keep their
// raster resolution and are scaled down to the card's base size on the page.
func ExportPdf(front, back image.Image, format cards.Format, baseName string) (Artifact, error) {
	if front == nil || back == nil {
		return Artifact{}, fmt.Errorf("export pdf: both faces are required")
	}
	g, err := PageGeometry(format)
	if err != nil {
		return Artifact{}, err
	}

	// Landscape swaps the portrait size, so pass it short side first.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.PageH, Ht: g.PageW},
	})
	pdf.SetCompression(compressPDF)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(baseName+" ID Card", true)
	pdf.SetCreator("ProID", true)
	pdf.AddPage()

	for _, face := range []struct {
		name string
		img  image.Image
		at   Rect
	}{
		{"front", front, g.Front},
		{"back", back, g.Back},
	} {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, face.img, imaging.PNG); err != nil {
			return Artifact{}, fmt.Errorf("export pdf %s face: %w", face.name, err)
		}
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(face.name, opts, &buf)
		pdf.ImageOptions(face.name, face.at.X, face.at.Y, face.at.W, face.at.H, false, opts, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return Artifact{}, fmt.Errorf("export pdf: %w", err)
	}
	return Artifact{Name: PDFName(baseName), Kind: KindPDF, ContentType: "application/pdf", Data: out.Bytes()}, nil
}
