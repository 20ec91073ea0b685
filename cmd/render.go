package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/go-raytrace/renderer"
	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/scene/reader"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame and save it as a png image.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, camOpts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	sc, err := loadScene(ctx, camOpts)
	if err != nil {
		return err
	}

	r, err := renderer.NewDefault(sc, opts, renderer.SaveFrameBuffer(ctx.String("out")))
	if err != nil {
		return err
	}

	logger.Noticef("rendering %dx%d frame (spp: %d, max depth: %d)", opts.FrameW, opts.FrameH, opts.SamplesPerPixel, opts.MaxDepth)
	if err = r.Render(); err != nil {
		return err
	}

	displayFrameStats(r.Stats())
	return nil
}

// Build renderer and camera options from the command flags.
func renderOptions(ctx *cli.Context) (renderer.Options, scene.CameraOptions, error) {
	aspect := float32(ctx.Float64("aspect"))
	if aspect <= 0 {
		return renderer.Options{}, scene.CameraOptions{}, fmt.Errorf("aspect ratio must be positive; got %f", aspect)
	}

	for _, name := range []string{"width", "height", "spp", "block-height"} {
		if val := ctx.Int(name); val < 0 {
			return renderer.Options{}, scene.CameraOptions{}, fmt.Errorf("%s must not be negative; got %d", name, val)
		}
	}

	opts := renderer.Options{
		FrameW:          uint32(ctx.Int("width")),
		FrameH:          uint32(ctx.Int("height")),
		SamplesPerPixel: uint32(ctx.Int("spp")),
		MaxDepth:        ctx.Int("depth"),
		Seed:            ctx.Int64("seed"),
		BlockH:          uint32(ctx.Int("block-height")),
	}

	// Derive missing frame height from the aspect ratio; when both frame
	// dims are given the camera viewport follows their ratio instead.
	if opts.FrameH == 0 {
		opts.FrameH = renderer.FrameHeightForAspect(opts.FrameW, aspect)
	} else if opts.FrameW != 0 {
		aspect = float32(opts.FrameW) / float32(opts.FrameH)
	}

	camOpts := scene.DefaultCameraOptions()
	camOpts.AspectRatio = aspect
	camOpts.ViewportHeight = float32(ctx.Float64("viewport-height"))
	camOpts.FocalLength = float32(ctx.Float64("focal-length"))
	if camOpts.ViewportHeight <= 0 || camOpts.FocalLength <= 0 {
		return renderer.Options{}, scene.CameraOptions{}, fmt.Errorf("viewport height and focal length must be positive")
	}

	return opts, camOpts, nil
}

// Load the scene file passed as the first argument or fall back to the
// default scene.
func loadScene(ctx *cli.Context, camOpts scene.CameraOptions) (*scene.Scene, error) {
	switch ctx.NArg() {
	case 0:
		logger.Info("no scene file specified; using default scene")
		return scene.NewDefaultScene(camOpts), nil
	case 1:
		return reader.ReadScene(ctx.Args().First(), camOpts)
	default:
		return nil, fmt.Errorf("expected at most one scene file argument; got %d", ctx.NArg())
	}
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Rows", "% of frame", "Primary rays", "Scattered rays", "Escaped rays", "Render time"})
	for _, stat := range stats.Blocks {
		table.Append([]string{
			fmt.Sprintf("%d - %d", stat.BlockY, stat.BlockY+stat.BlockH-1),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%d", stat.Rays.Primary),
			fmt.Sprintf("%d", stat.Rays.Scattered),
			fmt.Sprintf("%d", stat.Rays.Escaped),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{
		"",
		"TOTAL",
		fmt.Sprintf("%d", stats.Rays.Primary),
		fmt.Sprintf("%d", stats.Rays.Scattered),
		fmt.Sprintf("%d", stats.Rays.Escaped),
		fmt.Sprintf("%s (+%s post)", stats.RenderTime, stats.PostProcessTime),
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
