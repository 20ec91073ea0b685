package renderer

// The default height of the row bands used for collecting frame statistics.
const DefaultBlockH uint32 = 16

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of jittered samples averaged per pixel.
	SamplesPerPixel uint32

	// Max number of bounces per path. Paths with a non-positive depth
	// contribute no light.
	MaxDepth int

	// Seed for the random number generator. A zero value seeds the
	// generator from the wall clock.
	Seed int64

	// Height of the row bands used for collecting frame statistics. A zero
	// value treats the whole frame as a single band.
	BlockH uint32
}

// Derive the frame height for the given width and aspect ratio.
func FrameHeightForAspect(frameW uint32, aspectRatio float32) uint32 {
	return uint32(float32(frameW) / aspectRatio)
}
