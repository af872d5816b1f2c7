package cli

import (
	"fmt"
	"image"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/DanLigairi1978/ProID/internal/cards"
)

// imageToANSI draws img with upper half blocks: each character cell shows
// two stacked pixels, the top as foreground and the bottom as background.
func imageToANSI(img image.Image, width int) string {
	b := img.Bounds()
	if width <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}
	rows := int(float64(width) * float64(b.Dy()) / float64(b.Dx()) / 2)
	if rows < 1 {
		rows = 1
	}
	small := resize.Resize(uint(width), uint(rows*2), img, resize.Lanczos3)
	sb := small.Bounds()

	var buf strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < width; x++ {
			top, _ := colorful.MakeColor(small.At(sb.Min.X+x, sb.Min.Y+2*y))
			bottom, _ := colorful.MakeColor(small.At(sb.Min.X+x, sb.Min.Y+2*y+1))
			tr, tg, tb := top.Clamped().RGB255()
			br, bg, bb := bottom.Clamped().RGB255()
			fmt.Fprintf(&buf, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		buf.WriteString("\x1b[0m\n")
	}
	return buf.String()
}

// swatch is a two-cell block filled with c.
func swatch(c cards.RGB) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", c.R, c.G, c.B)
}
