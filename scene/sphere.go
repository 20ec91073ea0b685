package scene

import (
	"fmt"

	"github.com/achilleasa/go-raytrace/types"
	"github.com/chewxy/math32"
)

// A sphere surface.
type Sphere struct {
	Center types.Vec3
	Radius float32
}

// Create new sphere.
func NewSphere(center types.Vec3, radius float32) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

func (s *Sphere) String() string {
	return fmt.Sprintf("sphere(center: (%3.3f, %3.3f, %3.3f), radius: %3.3f)", s.Center[0], s.Center[1], s.Center[2], s.Radius)
}

// Intersect ray with sphere by solving |O + tD - C|^2 = r^2 for t. The nearer
// root is tested first; the farther root is only used if the nearer one falls
// outside [tMin, tMax].
func (s *Sphere) Hit(r Ray, tMin, tMax float32) (HitRecord, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.LenSq()
	if a == 0 {
		return HitRecord{}, false
	}
	halfB := oc.Dot(r.Direction)
	c := oc.LenSq() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}

	sqrtD := math32.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return HitRecord{}, false
		}
	}

	rec := HitRecord{
		T:     root,
		Point: r.At(root),
	}
	rec.setFaceNormal(r, rec.Point.Sub(s.Center).Div(s.Radius))
	return rec, true
}
