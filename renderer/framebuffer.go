package renderer

import (
	"image"

	"github.com/achilleasa/go-raytrace/types"
)

// Linear colors are gamma corrected and mapped to [0, maxByteValue) before
// being truncated to a byte.
const maxByteValue float32 = 255.999

// An 8-bit RGB frame buffer with its origin at the top-left corner.
type FrameBuffer struct {
	W, H uint32

	img *image.RGBA
}

func NewFrameBuffer(w, h uint32) *FrameBuffer {
	fb := &FrameBuffer{
		W:   w,
		H:   h,
		img: image.NewRGBA(image.Rect(0, 0, int(w), int(h))),
	}

	// Frames are always opaque
	for offset := 3; offset < len(fb.img.Pix); offset += 4 {
		fb.img.Pix[offset] = 0xff
	}
	return fb
}

// Set pixel color.
func (fb *FrameBuffer) Set(x, y uint32, rgb [3]uint8) {
	offset := fb.img.PixOffset(int(x), int(y))
	copy(fb.img.Pix[offset:offset+3], rgb[:])
}

// Get pixel color.
func (fb *FrameBuffer) At(x, y uint32) [3]uint8 {
	offset := fb.img.PixOffset(int(x), int(y))
	return [3]uint8{fb.img.Pix[offset], fb.img.Pix[offset+1], fb.img.Pix[offset+2]}
}

// Get the frame buffer contents as an image.
func (fb *FrameBuffer) Image() *image.RGBA {
	return fb.img
}

// Convert a linear color to an 8-bit RGB triplet by applying gamma-2
// correction and mapping each channel from [0, 1] to [0, 255].
func ColorToRGB(color types.Vec3) [3]uint8 {
	var out [3]uint8

	gammaCorrected := color.Clamp(0, 1).Sqrt()
	for comp := 0; comp < 3; comp++ {
		mapped := types.MapRange(gammaCorrected[comp], 0, 1, 0, maxByteValue)
		out[comp] = uint8(types.Clamp(mapped, 0, 255))
	}
	return out
}
