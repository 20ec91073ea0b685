package reader

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/go-raytrace/asset"
	"github.com/achilleasa/go-raytrace/log"
	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

// Read a scene definition from a local file or http(s) URL. Camera settings
// not overridden by the scene file are taken from camDefaults.
func ReadScene(scenePath string, camDefaults scene.CameraOptions) (*scene.Scene, error) {
	res, err := asset.NewResource(scenePath, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return newTextReader(camDefaults).Read(res)
}

// Read a scene definition from an already opened resource.
func ReadSceneResource(res *asset.Resource, camDefaults scene.CameraOptions) (*scene.Scene, error) {
	return newTextReader(camDefaults).Read(res)
}

type textSceneReader struct {
	logger log.Logger

	sceneGraph *scene.Scene
	camOpts    scene.CameraOptions

	// Resources currently being parsed; used for detecting include cycles.
	openPaths map[string]bool

	// An error stack that provides additional error information when
	// scene files include other files.
	errStack []string
}

func newTextReader(camDefaults scene.CameraOptions) *textSceneReader {
	return &textSceneReader{
		logger:     log.New("sceneReader"),
		sceneGraph: scene.NewScene(),
		camOpts:    camDefaults,
		openPaths:  make(map[string]bool),
		errStack:   make([]string, 0),
	}
}

// Parse the scene and attach a camera built from the parsed settings.
func (r *textSceneReader) Read(res *asset.Resource) (*scene.Scene, error) {
	r.logger.Infof("parsing scene from %s", res.Path())
	start := time.Now()

	if err := r.parse(res); err != nil {
		return nil, err
	}

	r.sceneGraph.SetCamera(scene.NewCamera(r.camOpts))
	r.logger.Infof("parsed scene with %d surface(s) in %d ms", len(r.sceneGraph.Surfaces), time.Since(start).Nanoseconds()/1000000)

	return r.sceneGraph, nil
}

// Generate an error message that also includes any data in the error stack.
func (r *textSceneReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)
	return fmt.Errorf("%s", strings.Trim(
		fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n")),
		"\n",
	))
}

// Push a frame to the error stack.
func (r *textSceneReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *textSceneReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// Parse a float32 argument.
func parseFloat32(lineTokens []string) (float32, error) {
	if len(lineTokens) != 2 {
		return 0, fmt.Errorf("unsupported syntax for '%s'; expected 1 argument; got %d", lineTokens[0], len(lineTokens)-1)
	}

	val, err := strconv.ParseFloat(lineTokens[1], 32)
	if err != nil {
		return 0, err
	}

	return float32(val), nil
}

// Parse a Vec3 argument.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) != 4 {
		return types.Vec3{}, fmt.Errorf("unsupported syntax for '%s'; expected 3 arguments; got %d", lineTokens[0], len(lineTokens)-1)
	}

	return parseFloats(lineTokens[1:])
}

func parseFloats(tokens []string) (types.Vec3, error) {
	v := types.Vec3{}
	for tokIdx, tok := range tokens {
		coord, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return v, err
		}
		v[tokIdx] = float32(coord)
	}
	return v, nil
}
