// Package render burns detection boxes and labels into image copies.
package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/yingzhe/fishdetect/pkg/boxes"
	"github.com/yingzhe/fishdetect/pkg/types"
)

var lime = color.NRGBA{R: 0, G: 255, B: 0, A: 255}

const (
	strokeWidth = 4
	// label text sits this many pixels above the box top edge
	labelOffset = 20
)

// Annotate returns a copy of img with every detection drawn as a lime
// rectangle and its label above the top-left corner. Boxes outside the
// image bounds are clipped by the line primitives, not corrected.
func Annotate(img image.Image, dets []types.Detection) *image.NRGBA {
	out := imaging.Clone(img)
	w, h := out.Bounds().Dx(), out.Bounds().Dy()

	for _, d := range dets {
		r := boxes.ToPixels(d.Box2D, w, h)
		drawRect(out, r, lime, strokeWidth)
		drawLabel(out, d.Label, r.X1, r.Y1-labelOffset, lime)
	}
	return out
}

func drawRect(img *image.NRGBA, r types.PixelRect, c color.NRGBA, stroke int) {
	for s := 0; s < stroke; s++ {
		drawHLine(img, r.Y1+s, r.X1, r.X2, c)
		drawHLine(img, r.Y2-1-s, r.X1, r.X2, c)
		drawVLine(img, r.X1+s, r.Y1, r.Y2, c)
		drawVLine(img, r.X2-1-s, r.Y1, r.Y2, c)
	}
}

func drawLabel(img *image.NRGBA, text string, x, y int, c color.NRGBA) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}

func drawHLine(img *image.NRGBA, y, x0, x1 int, c color.NRGBA) {
	if y < 0 || y >= img.Bounds().Dy() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1 <= 0 || x0 >= img.Bounds().Dx() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > img.Bounds().Dx() {
		x1 = img.Bounds().Dx()
	}
	i := y*img.Stride + x0*4
	for x := x0; x < x1; x++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += 4
	}
}

func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	if x < 0 || x >= img.Bounds().Dx() {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y1 <= 0 || y0 >= img.Bounds().Dy() {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > img.Bounds().Dy() {
		y1 = img.Bounds().Dy()
	}
	i := y0*img.Stride + x*4
	for y := y0; y < y1; y++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += img.Stride
	}
}
