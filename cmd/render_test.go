package cmd

import (
	"flag"
	"strings"
	"testing"

	"github.com/achilleasa/go-raytrace/renderer"
	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
	"github.com/urfave/cli"
)

func mockContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Int("width", 400, "")
	set.Int("height", 0, "")
	set.Int("spp", 10, "")
	set.Int("depth", 5, "")
	set.Int64("seed", 0, "")
	set.Int("block-height", int(renderer.DefaultBlockH), "")
	set.Float64("aspect", 16.0/9.0, "")
	set.Float64("viewport-height", 2.0, "")
	set.Float64("focal-length", 1.0, "")
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestRenderOptionsDeriveHeight(t *testing.T) {
	opts, camOpts, err := renderOptions(mockContext(t, "-seed", "7"))
	if err != nil {
		t.Fatal(err)
	}

	if opts.FrameW != 400 || opts.FrameH != 225 {
		t.Fatalf("expected 400x225 frame; got %dx%d", opts.FrameW, opts.FrameH)
	}
	if opts.SamplesPerPixel != 10 || opts.MaxDepth != 5 || opts.Seed != 7 {
		t.Fatalf("unexpected sampling options %+v", opts)
	}
	if opts.BlockH != renderer.DefaultBlockH {
		t.Fatalf("expected default block height %d; got %d", renderer.DefaultBlockH, opts.BlockH)
	}
	if camOpts.AspectRatio != float32(16.0/9.0) {
		t.Fatalf("expected camera aspect to be 16:9; got %f", camOpts.AspectRatio)
	}
}

func TestRenderOptionsExplicitHeight(t *testing.T) {
	_, camOpts, err := renderOptions(mockContext(t, "-width", "300", "-height", "300", "-focal-length", "2"))
	if err != nil {
		t.Fatal(err)
	}

	if camOpts.AspectRatio != 1 {
		t.Fatalf("expected camera aspect to follow frame dims; got %f", camOpts.AspectRatio)
	}
	if camOpts.FocalLength != 2 {
		t.Fatalf("expected focal length 2; got %f", camOpts.FocalLength)
	}
}

func TestRenderOptionsErrors(t *testing.T) {
	if _, _, err := renderOptions(mockContext(t, "-aspect", "0")); err == nil {
		t.Fatal("expected an error for a zero aspect ratio")
	}
	if _, _, err := renderOptions(mockContext(t, "-viewport-height", "-1")); err == nil {
		t.Fatal("expected an error for a negative viewport height")
	}

	type spec struct {
		args     []string
		expError string
	}
	specs := []spec{
		spec{[]string{"-width", "-5", "-height", "10"}, "width must not be negative; got -5"},
		spec{[]string{"-height", "-1"}, "height must not be negative; got -1"},
		spec{[]string{"-spp", "-1"}, "spp must not be negative; got -1"},
		spec{[]string{"-block-height", "-16"}, "block-height must not be negative; got -16"},
	}
	for index, s := range specs {
		_, _, err := renderOptions(mockContext(t, s.args...))
		if err == nil || err.Error() != s.expError {
			t.Fatalf("[spec %d] expected error %q; got %v", index, s.expError, err)
		}
	}
}

func TestRenderOptionsNegativeDepth(t *testing.T) {
	opts, _, err := renderOptions(mockContext(t, "-depth", "-1"))
	if err != nil {
		t.Fatal(err)
	}
	if opts.MaxDepth != -1 {
		t.Fatalf("expected depth to stay negative; got %d", opts.MaxDepth)
	}
}

func TestSceneTable(t *testing.T) {
	sc := scene.NewScene()
	sc.AddSurface(scene.NewSphere(types.XYZ(0, -100.5, -1), 100))

	out := sceneTable(sc)
	for _, exp := range []string{"sphere", "(0.000, -100.500, -1.000)", "100.000"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected scene table to contain %q; got\n%s", exp, out)
		}
	}
}
