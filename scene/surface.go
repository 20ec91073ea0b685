package scene

import "github.com/achilleasa/go-raytrace/types"

// A ray is a parametric line defined as Origin + t * Direction.
type Ray struct {
	Origin    types.Vec3
	Direction types.Vec3
}

// Get the point along the ray at parameter t. Any t value is valid; callers
// are responsible for restricting t to the range they care about.
func (r Ray) At(t float32) types.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// The HitRecord type describes the nearest intersection of a ray with a surface.
type HitRecord struct {
	// The ray parameter at the intersection point.
	T float32

	// The intersection point.
	Point types.Vec3

	// The unit surface normal at the intersection point. The normal always
	// points against the incoming ray direction.
	Normal types.Vec3

	// True if the ray struck the outward-facing side of the surface.
	FrontFace bool
}

// Orient the record normal so it points against the ray direction given the
// surface's geometric outward normal.
func (h *HitRecord) setFaceNormal(r Ray, outwardNormal types.Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}

// The Surface interface is implemented by all scene geometry that can be
// intersected by a ray.
type Surface interface {
	// Find the nearest intersection of r with the surface whose ray
	// parameter lies in [tMin, tMax]. The second return value is false if
	// no such intersection exists.
	Hit(r Ray, tMin, tMax float32) (HitRecord, bool)
}
