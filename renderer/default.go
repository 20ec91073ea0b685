package renderer

import (
	"math/rand"
	"time"

	"github.com/achilleasa/go-raytrace/log"
	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/tracer"
	"github.com/achilleasa/go-raytrace/types"
)

var logger = log.New("renderer")

// A single-threaded renderer that traces every pixel of the frame with the
// tracer integrator.
type defaultRenderer struct {
	scene       *scene.Scene
	options     Options
	integrator  *tracer.Integrator
	frameBuffer *FrameBuffer
	postProcess []PostProcessStage
	stats       FrameStats
}

// Create a new default renderer. Post-processing stages run in order after
// each frame has been traced.
func NewDefault(sc *scene.Scene, opts Options, postProcess ...PostProcessStage) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if opts.FrameW < 2 || opts.FrameH < 2 {
		return nil, ErrInvalidFrameDims
	}
	if opts.SamplesPerPixel == 0 {
		return nil, ErrNoSamples
	}
	if opts.BlockH == 0 || opts.BlockH > opts.FrameH {
		opts.BlockH = opts.FrameH
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debugf("using random seed %d", seed)

	return &defaultRenderer{
		scene:       sc,
		options:     opts,
		integrator:  tracer.NewIntegrator(rand.New(rand.NewSource(seed))),
		frameBuffer: NewFrameBuffer(opts.FrameW, opts.FrameH),
		postProcess: postProcess,
	}, nil
}

func (r *defaultRenderer) FrameBuffer() *FrameBuffer {
	return r.frameBuffer
}

func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Render frame. Scanlines are sampled bottom to top in camera space and
// written top to bottom into the frame buffer.
func (r *defaultRenderer) Render() error {
	frameW, frameH := r.options.FrameW, r.options.FrameH
	r.stats = FrameStats{
		Blocks: make([]BlockStat, 0, (frameH+r.options.BlockH-1)/r.options.BlockH),
	}
	r.integrator.ResetStats()

	start := time.Now()
	for blockY := uint32(0); blockY < frameH; blockY += r.options.BlockH {
		blockH := r.options.BlockH
		if blockY+blockH > frameH {
			blockH = frameH - blockY
		}
		r.stats.Blocks = append(r.stats.Blocks, r.renderBlock(blockY, blockH))
	}
	r.stats.RenderTime = time.Since(start)
	r.stats.Rays = r.integrator.Stats()
	logger.Infof("traced %dx%d frame in %s", frameW, frameH, r.stats.RenderTime)

	for _, stage := range r.postProcess {
		stageTime, err := stage(r.frameBuffer)
		r.stats.PostProcessTime += stageTime
		if err != nil {
			return err
		}
	}

	return nil
}

// Render the output rows [blockY, blockY+blockH).
func (r *defaultRenderer) renderBlock(blockY, blockH uint32) BlockStat {
	frameH := r.options.FrameH
	raysBefore := r.integrator.Stats()

	start := time.Now()
	for row := blockY; row < blockY+blockH; row++ {
		// Camera space row; v grows upwards while output rows grow downwards
		y := frameH - row - 1
		logger.Debugf("scanlines remaining: %d", y)
		r.renderScanline(y)
	}

	return BlockStat{
		BlockY:       blockY,
		BlockH:       blockH,
		FramePercent: 100.0 * float32(blockH) / float32(frameH),
		RenderTime:   time.Since(start),
		Rays:         r.integrator.Stats().Sub(raysBefore),
	}
}

// Trace all pixels of camera space scanline y and store them at output row
// (frameH - y) - 1.
func (r *defaultRenderer) renderScanline(y uint32) {
	frameW, frameH := r.options.FrameW, r.options.FrameH
	spp := r.options.SamplesPerPixel
	depth := r.options.MaxDepth
	cam := r.scene.Camera
	rng := r.integrator.Rand()

	for x := uint32(0); x < frameW; x++ {
		var color types.Vec3
		for sample := uint32(0); sample < spp; sample++ {
			u := (float32(x) + rng.Float32()) / float32(frameW-1)
			v := (float32(y) + rng.Float32()) / float32(frameH-1)
			color = color.Add(r.integrator.RayColor(cam.GetRay(u, v), r.scene, depth))
		}

		r.frameBuffer.Set(x, (frameH-y)-1, ColorToRGB(color.Div(float32(spp))))
	}
}
