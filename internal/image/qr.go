package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	// validate png decode
	_, err = png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, err
	}
	return pngBytes, nil
}

// drawQRMarker paints the QR modules of payload in tint, as a square
// centred in rect, leaving the light modules transparent.
func drawQRMarker(dst *image.NRGBA, rect image.Rectangle, payload string, tint color.NRGBA) error {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return err
	}
	q.DisableBorder = true
	bitmap := q.Bitmap()
	n := len(bitmap)
	if n == 0 {
		return nil
	}

	side := rect.Dx()
	if rect.Dy() < side {
		side = rect.Dy()
	}
	x0 := float64(rect.Min.X + (rect.Dx()-side)/2)
	y0 := float64(rect.Min.Y + (rect.Dy()-side)/2)
	module := float64(side) / float64(n)
	src := image.NewUniform(tint)

	for row, line := range bitmap {
		for col, dark := range line {
			if !dark {
				continue
			}
			cell := image.Rect(
				int(math.Floor(x0+float64(col)*module)),
				int(math.Floor(y0+float64(row)*module)),
				int(math.Floor(x0+float64(col+1)*module)),
				int(math.Floor(y0+float64(row+1)*module)),
			)
			fillMasked(dst, cell, src, image.Point{}, nil)
		}
	}
	return nil
}
