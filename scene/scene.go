package scene

import (
	"fmt"

	"github.com/achilleasa/go-raytrace/types"
)

// A scene is an ordered list of surfaces viewed through a camera. Scenes are
// read-only while rendering.
type Scene struct {
	Camera *Camera

	Surfaces []Surface
}

func NewScene() *Scene {
	return &Scene{
		Surfaces: make([]Surface, 0),
	}
}

// Create the default scene: a small sphere resting on a large ground sphere.
func NewDefaultScene(camOpts CameraOptions) *Scene {
	sc := NewScene()
	sc.SetCamera(NewCamera(camOpts))
	for _, sphere := range []*Sphere{
		NewSphere(types.XYZ(0, 0, -1), 0.5),
		NewSphere(types.XYZ(0, -100.5, -1), 100),
	} {
		if err := sc.AddSurface(sphere); err != nil {
			panic(err)
		}
	}
	return sc
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Add a surface to the scene.
func (s *Scene) AddSurface(surface Surface) error {
	if surface == nil {
		return fmt.Errorf("scene: cannot add nil surface")
	}
	for _, existing := range s.Surfaces {
		if existing == surface {
			return fmt.Errorf("scene: surface already added")
		}
	}
	if sphere, isSphere := surface.(*Sphere); isSphere && sphere.Radius <= 0 {
		return fmt.Errorf("scene: sphere radius must be positive; got %f", sphere.Radius)
	}

	s.Surfaces = append(s.Surfaces, surface)
	return nil
}

// Find the nearest intersection of r with any scene surface within
// [tMin, tMax]. After each accepted hit the upper bound shrinks to the hit
// distance so that surfaces checked later can only report closer hits.
func (s *Scene) Hit(r Ray, tMin, tMax float32) (HitRecord, bool) {
	var (
		closest HitRecord
		hitAny  bool
	)

	for _, surface := range s.Surfaces {
		if rec, hit := surface.Hit(r, tMin, tMax); hit {
			tMax = rec.T
			closest = rec
			hitAny = true
		}
	}

	return closest, hitAny
}
