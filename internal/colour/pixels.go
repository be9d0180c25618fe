package colour

import (
	"image"
	"image/draw"
)

// PixelBuffer is the decoded input the pipeline operates on: row-major RGBA
// bytes, 8 bits per channel. The image is expected to have been downscaled
// by the caller so that max(Width, Height) <= 600; larger buffers still work
// but cost more (the sampler widens its stride instead of parallelising).
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // length Width*Height*4, RGBA order
}

// NewPixelBuffer wraps raw RGBA bytes. The slice is used as-is, not copied.
func NewPixelBuffer(width, height int, pix []uint8) *PixelBuffer {
	return &PixelBuffer{Width: width, Height: height, Pix: pix}
}

// FromImage converts any decoded image into a PixelBuffer by drawing it into
// a non-premultiplied RGBA raster.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return &PixelBuffer{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    dst.Pix,
	}
}

// at returns the RGBA channels of the pixel at (x, y).
func (b *PixelBuffer) at(x, y int) (r, g, bl, a uint8) {
	offset := (y*b.Width + x) * 4
	return b.Pix[offset], b.Pix[offset+1], b.Pix[offset+2], b.Pix[offset+3]
}

// pixelCount returns the total number of pixels in the buffer.
func (b *PixelBuffer) pixelCount() int {
	return b.Width * b.Height
}
