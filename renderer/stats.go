package renderer

import (
	"time"

	"github.com/achilleasa/go-raytrace/tracer"
)

// Statistics for a horizontal band of rows.
type BlockStat struct {
	// The first output row and the band height.
	BlockY uint32
	BlockH uint32

	// The percentage of total frame area this band represents.
	FramePercent float32

	// Render time for the band.
	RenderTime time.Duration

	// Rays traced while rendering the band.
	Rays tracer.RayStats
}

type FrameStats struct {
	// Per-band stats in top to bottom order.
	Blocks []BlockStat

	// Ray counters for the entire frame.
	Rays tracer.RayStats

	// Time spent tracing the frame and running post-processing stages.
	RenderTime      time.Duration
	PostProcessTime time.Duration
}
