package renderer

import "errors"

var (
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrInvalidFrameDims = errors.New("renderer: frame width and height must be at least 2 pixels")
	ErrNoSamples        = errors.New("renderer: samples per pixel must be greater than zero")
)
