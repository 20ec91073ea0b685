package scene

import (
	"fmt"

	"github.com/achilleasa/go-raytrace/types"
)

// Camera configuration.
type CameraOptions struct {
	// The viewport width to height ratio.
	AspectRatio float32

	// Viewport height in world units.
	ViewportHeight float32

	// Distance between the eye point and the viewport plane.
	FocalLength float32

	// The eye position.
	Origin types.Vec3
}

// Get the default camera options: a 16:9 viewport two units high placed one
// unit in front of an eye at the origin looking down -z.
func DefaultCameraOptions() CameraOptions {
	return CameraOptions{
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
		Origin:         types.Vec3{0, 0, 0},
	}
}

// The camera maps normalized viewport coordinates to world space rays. Camera
// instances are immutable once created.
type Camera struct {
	origin          types.Vec3
	lowerLeftCorner types.Vec3
	horizontal      types.Vec3
	vertical        types.Vec3
}

func NewCamera(opts CameraOptions) *Camera {
	viewportWidth := opts.AspectRatio * opts.ViewportHeight

	horizontal := types.Vec3{viewportWidth, 0, 0}
	vertical := types.Vec3{0, opts.ViewportHeight, 0}
	lowerLeftCorner := opts.Origin.
		Sub(horizontal.Div(2)).
		Sub(vertical.Div(2)).
		Sub(types.Vec3{0, 0, opts.FocalLength})

	return &Camera{
		origin:          opts.Origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// Get a ray from the eye through the viewport point at (u, v) where u runs
// left to right and v bottom to top, both in [0, 1].
func (c *Camera) GetRay(u, v float32) Ray {
	return Ray{
		Origin: c.origin,
		Direction: c.lowerLeftCorner.
			Add(c.horizontal.Mul(u)).
			Add(c.vertical.Mul(v)).
			Sub(c.origin),
	}
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera:\nOrigin     : (%3.3f, %3.3f, %3.3f)\nLowerLeft  : (%3.3f, %3.3f, %3.3f)\nHorizontal : (%3.3f, %3.3f, %3.3f)\nVertical   : (%3.3f, %3.3f, %3.3f)",
		c.origin[0], c.origin[1], c.origin[2],
		c.lowerLeftCorner[0], c.lowerLeftCorner[1], c.lowerLeftCorner[2],
		c.horizontal[0], c.horizontal[1], c.horizontal[2],
		c.vertical[0], c.vertical[1], c.vertical[2],
	)
}
