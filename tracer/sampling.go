package tracer

import "github.com/achilleasa/go-raytrace/types"

// A source of uniformly distributed random numbers in [0, 1). It is
// satisfied by *rand.Rand.
type RandSource interface {
	Float32() float32
}

// Random unit vector samples shorter than this are rejected to avoid
// amplifying rounding errors when normalizing.
const minSampleLenSq float32 = 1e-12

// Generate a uniformly distributed random point inside the unit ball by
// rejection sampling the enclosing cube.
func RandomInUnitSphere(rng RandSource) types.Vec3 {
	for {
		p := types.Vec3{
			2*rng.Float32() - 1,
			2*rng.Float32() - 1,
			2*rng.Float32() - 1,
		}
		if p.LenSq() < 1 {
			return p
		}
	}
}

// Generate a uniformly distributed random direction.
func RandomUnitVector(rng RandSource) types.Vec3 {
	for {
		p := RandomInUnitSphere(rng)
		if lenSq := p.LenSq(); lenSq > minSampleLenSq {
			return p.Normalize()
		}
	}
}
