package tracer

import (
	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
	"github.com/chewxy/math32"
)

const (
	// Bounce rays ignore intersections closer than this distance to
	// suppress self-intersections caused by floating point errors.
	ShadowAcneEpsilon float32 = 0.001

	// The fraction of energy retained after each diffuse bounce.
	Albedo float32 = 0.5
)

var (
	// Background gradient endpoints; white is used at t=0 and sky blue at t=1.
	BackgroundWhite   = types.Vec3{1.0, 1.0, 1.0}
	BackgroundSkyBlue = types.Vec3{0.5, 0.7, 1.0}
)

// Ray counters collected by an integrator.
type RayStats struct {
	// Rays generated by the camera.
	Primary uint64

	// Diffuse bounce rays.
	Scattered uint64

	// Rays that escaped the scene and sampled the background.
	Escaped uint64

	// Paths terminated because they exhausted the bounce budget.
	Absorbed uint64
}

// Total number of traced rays.
func (s RayStats) Total() uint64 {
	return s.Primary + s.Scattered
}

// Get the counter deltas relative to an earlier snapshot.
func (s RayStats) Sub(earlier RayStats) RayStats {
	return RayStats{
		Primary:   s.Primary - earlier.Primary,
		Scattered: s.Scattered - earlier.Scattered,
		Escaped:   s.Escaped - earlier.Escaped,
		Absorbed:  s.Absorbed - earlier.Absorbed,
	}
}

// The Integrator estimates the radiance carried along a ray by recursively
// scattering it off scene surfaces. Integrators are not safe for concurrent
// use.
type Integrator struct {
	rng   RandSource
	stats RayStats
}

// Create a new integrator that draws samples from the supplied random source.
func NewIntegrator(rng RandSource) *Integrator {
	return &Integrator{
		rng: rng,
	}
}

// Get the integrator's random source.
func (in *Integrator) Rand() RandSource {
	return in.rng
}

// Get the collected ray counters.
func (in *Integrator) Stats() RayStats {
	return in.stats
}

// Reset ray counters.
func (in *Integrator) ResetStats() {
	in.stats = RayStats{}
}

// Trace a camera ray through the scene and return its linear color. The depth
// argument bounds the number of bounces; a depth <= 0 always yields black.
func (in *Integrator) RayColor(r scene.Ray, sc *scene.Scene, depth int) types.Vec3 {
	in.stats.Primary++
	return in.rayColor(r, sc, depth)
}

func (in *Integrator) rayColor(r scene.Ray, sc *scene.Scene, depth int) types.Vec3 {
	if depth <= 0 {
		in.stats.Absorbed++
		return types.Vec3{}
	}

	rec, hit := sc.Hit(r, ShadowAcneEpsilon, math32.Inf(1))
	if !hit {
		in.stats.Escaped++
		return Background(r.Direction)
	}

	scattered := scene.Ray{
		Origin:    rec.Point,
		Direction: rec.Normal.Add(RandomUnitVector(in.rng)),
	}
	in.stats.Scattered++
	return in.rayColor(scattered, sc, depth-1).Mul(Albedo)
}

// Get the background color for a ray that escaped the scene. The color is a
// vertical gradient from white (t=0) to sky blue (t=1).
func Background(dir types.Vec3) types.Vec3 {
	unitDir := dir.Normalize()

	// Normalization rounding may push the y component marginally past 1
	t := types.Clamp(0.5*(unitDir[1]+1.0), 0, 1)
	return types.LerpVec3(t, BackgroundWhite, BackgroundSkyBlue)
}
