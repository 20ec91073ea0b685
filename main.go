package main

import (
	"os"

	"github.com/achilleasa/go-raytrace/cmd"
	"github.com/achilleasa/go-raytrace/log"
	"github.com/achilleasa/go-raytrace/renderer"
	"github.com/urfave/cli"
)

var cameraFlags = []cli.Flag{
	cli.Float64Flag{
		Name:  "aspect",
		Value: 16.0 / 9.0,
		Usage: "viewport aspect ratio; also used for deriving the frame height",
	},
	cli.Float64Flag{
		Name:  "viewport-height",
		Value: 2.0,
		Usage: "camera viewport height in world units",
	},
	cli.Float64Flag{
		Name:  "focal-length",
		Value: 1.0,
		Usage: "distance between the camera eye and the viewport",
	},
}

var renderFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Value: 1920,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: 0,
		Usage: "frame height; if 0, derive from frame width and aspect ratio",
	},
	cli.IntFlag{
		Name:  "spp",
		Value: 100,
		Usage: "samples per pixel",
	},
	cli.IntFlag{
		Name:  "depth",
		Value: 50,
		Usage: "max number of ray bounces",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 0,
		Usage: "random seed; if 0, seed from the current time",
	},
	cli.IntFlag{
		Name:  "block-height",
		Value: int(renderer.DefaultBlockH),
		Usage: "height of the row bands reported in frame statistics",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "output.png",
		Usage: "image filename for the rendered frame",
	},
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-raytrace"
	app.Usage = "render sphere scenes using path tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level (debug, info, notice, warning, error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a scene file (or the default two sphere scene if no file is given)
and save the result as a png image.

Scene files list one directive per line:

  sphere cx cy cz radius
  camera_eye x y z
  camera_aspect ratio
  camera_viewport_height h
  camera_focal_length f
  include other.scene`,
			ArgsUsage: "[scene_file]",
			Flags:     append(append([]cli.Flag{}, renderFlags...), cameraFlags...),
			Action:    cmd.RenderFrame,
		},
		{
			Name:      "scene",
			Usage:     "display scene information",
			ArgsUsage: "[scene_file]",
			Flags:     cameraFlags,
			Action:    cmd.ShowSceneInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("raytrace").Error(err)
		os.Exit(1)
	}
}
