package raysphere

import (
	"image"

	"github.com/fogleman/gg"
)

// Image converts the buffer to an opaque 8-bit NRGBA image.
func (b *PixelBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	const pxBytes = 4
	for j := 0; j < b.Height; j++ {
		rowOff := j * img.Stride
		for i, c := range b.Row(j) {
			p := rowOff + i*pxBytes
			img.Pix[p+0] = c.R
			img.Pix[p+1] = c.G
			img.Pix[p+2] = c.B
			img.Pix[p+3] = 255
		}
	}
	return img
}

// SavePNG writes buf to path as a lossless 8-bit PNG.
func SavePNG(path string, buf *PixelBuffer) error {
	return gg.SavePNG(path, buf.Image())
}
