package raysphere

import "fmt"

// RGB8 is one output pixel, 8 bits per channel.
type RGB8 struct {
	R, G, B uint8
}

// PixelBuffer is a Width x Height grid of RGB8, row-major, created black.
type PixelBuffer struct {
	Width, Height int
	pix           []RGB8 // flat: row*Width + col
}

// NewPixelBuffer allocates a zero-initialized (black) buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width <= 0 || height <= 0 {
		panic("image resolution must be positive")
	}
	return &PixelBuffer{Width: width, Height: height, pix: make([]RGB8, width*height)}
}

func (b *PixelBuffer) idx(row, col int) int {
	if row < 0 || row >= b.Height || col < 0 || col >= b.Width {
		panic(fmt.Sprintf("pixel (%d, %d) out of range %dx%d", row, col, b.Width, b.Height))
	}
	return row*b.Width + col
}

// At returns the pixel at (row, col); out-of-range indices panic.
func (b *PixelBuffer) At(row, col int) RGB8 { return b.pix[b.idx(row, col)] }

// Set stores c at (row, col); out-of-range indices panic.
func (b *PixelBuffer) Set(row, col int, c RGB8) { b.pix[b.idx(row, col)] = c }

// Row returns a read-only view of one row.
func (b *PixelBuffer) Row(row int) []RGB8 {
	start := b.idx(row, 0)
	return b.pix[start : start+b.Width : start+b.Width]
}
