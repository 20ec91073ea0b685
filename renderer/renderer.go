package renderer

type Renderer interface {
	// Render frame and run any attached post-processing stages.
	Render() error

	// Get the frame buffer with the last rendered frame.
	FrameBuffer() *FrameBuffer

	// Get render statistics.
	Stats() FrameStats
}
