package scene

import (
	"testing"

	"github.com/achilleasa/go-raytrace/types"
	"github.com/chewxy/math32"
)

const testEps float32 = 1e-4

func TestSphereHitFromOutside(t *testing.T) {
	type spec struct {
		center types.Vec3
		radius float32
		dist   float32
	}
	specs := []spec{
		spec{types.XYZ(0, 0, 0), 0.5, 1},
		spec{types.XYZ(0, 0, -1), 0.5, 3},
		spec{types.XYZ(2, -1, 5), 1.5, 10},
		spec{types.XYZ(0, 0, 0), 100, 100.5},
	}

	for index, s := range specs {
		sphere := NewSphere(s.center, s.radius)
		r := Ray{
			Origin:    s.center.Add(types.XYZ(0, 0, s.dist)),
			Direction: types.XYZ(0, 0, -1),
		}

		rec, hit := sphere.Hit(r, 0, math32.Inf(1))
		if !hit {
			t.Fatalf("[spec %d] expected ray to hit sphere", index)
		}
		if expT := s.dist - s.radius; math32.Abs(rec.T-expT) > testEps {
			t.Fatalf("[spec %d] expected t to be %f; got %f", index, expT, rec.T)
		}
		if !rec.FrontFace {
			t.Fatalf("[spec %d] expected hit to be front-facing", index)
		}
		if !rec.Normal.ApproxEqual(types.XYZ(0, 0, 1), testEps) {
			t.Fatalf("[spec %d] expected normal to be (0, 0, 1); got %v", index, rec.Normal)
		}
	}
}

func TestSphereHitFromInside(t *testing.T) {
	sphere := NewSphere(types.XYZ(0, 0, -1), 0.5)
	r := Ray{
		Origin:    types.XYZ(0, 0, -1.1),
		Direction: types.XYZ(0, 0, -1),
	}

	rec, hit := sphere.Hit(r, 0.001, math32.Inf(1))
	if !hit {
		t.Fatal("expected ray originating inside the sphere to hit it")
	}
	if rec.FrontFace {
		t.Fatal("expected hit from inside the sphere to be back-facing")
	}
	if math32.Abs(rec.T-0.4) > testEps {
		t.Fatalf("expected t to be 0.4; got %f", rec.T)
	}

	// The normal should point back towards the ray origin
	toOrigin := r.Origin.Sub(rec.Point)
	if rec.Normal.Dot(toOrigin) <= 0 {
		t.Fatalf("expected normal %v to point towards the ray origin", rec.Normal)
	}
	if math32.Abs(rec.Normal.Len()-1) > testEps {
		t.Fatalf("expected unit normal; got length %f", rec.Normal.Len())
	}
}

func TestSphereHitWindow(t *testing.T) {
	sphere := NewSphere(types.XYZ(0, 0, -5), 1)
	r := Ray{Direction: types.XYZ(0, 0, -1)}

	// Both roots (4 and 6) behind tMin
	if _, hit := sphere.Hit(r, 7, 100); hit {
		t.Fatal("expected no hit when both roots lie before tMin")
	}

	// Both roots beyond tMax
	if _, hit := sphere.Hit(r, 0, 3); hit {
		t.Fatal("expected no hit when both roots lie after tMax")
	}

	// Near root excluded; far root accepted
	rec, hit := sphere.Hit(r, 5, 100)
	if !hit {
		t.Fatal("expected far root to be accepted")
	}
	if math32.Abs(rec.T-6) > testEps {
		t.Fatalf("expected far root t=6; got %f", rec.T)
	}
	if rec.FrontFace {
		t.Fatal("expected far root hit to be back-facing")
	}
}

func TestSphereMiss(t *testing.T) {
	sphere := NewSphere(types.XYZ(0, 0, -1), 0.5)

	r := Ray{Direction: types.XYZ(0, 1, 0)}
	if _, hit := sphere.Hit(r, 0.001, math32.Inf(1)); hit {
		t.Fatal("expected upward ray to miss the sphere")
	}

	// Degenerate direction
	r = Ray{Origin: types.XYZ(0, 0, -1)}
	if _, hit := sphere.Hit(r, 0.001, math32.Inf(1)); hit {
		t.Fatal("expected zero-length direction to report no hit")
	}
}

func TestSceneNearestHitIsOrderIndependent(t *testing.T) {
	near := NewSphere(types.XYZ(0, 0, -2), 0.5)
	far := NewSphere(types.XYZ(0, 0, -2.6), 0.5)
	r := Ray{Direction: types.XYZ(0, 0, -1)}

	permutations := [][]Surface{
		{near, far},
		{far, near},
	}

	for index, surfaces := range permutations {
		sc := NewScene()
		for _, s := range surfaces {
			if err := sc.AddSurface(s); err != nil {
				t.Fatal(err)
			}
		}

		rec, hit := sc.Hit(r, 0.001, math32.Inf(1))
		if !hit {
			t.Fatalf("[permutation %d] expected scene hit", index)
		}
		if math32.Abs(rec.T-1.5) > testEps {
			t.Fatalf("[permutation %d] expected nearest hit at t=1.5; got %f", index, rec.T)
		}
	}

	if _, hit := NewScene().Hit(r, 0.001, math32.Inf(1)); hit {
		t.Fatal("expected empty scene to report no hits")
	}
}

func TestSceneAddSurfaceErrors(t *testing.T) {
	sc := NewScene()
	sphere := NewSphere(types.XYZ(0, 0, -1), 0.5)

	if err := sc.AddSurface(sphere); err != nil {
		t.Fatal(err)
	}

	expError := "scene: surface already added"
	if err := sc.AddSurface(sphere); err == nil || err.Error() != expError {
		t.Fatalf("expected to get %s; got %v", expError, err)
	}

	expError = "scene: cannot add nil surface"
	if err := sc.AddSurface(nil); err == nil || err.Error() != expError {
		t.Fatalf("expected to get %s; got %v", expError, err)
	}

	expError = "scene: sphere radius must be positive; got 0.000000"
	if err := sc.AddSurface(NewSphere(types.XYZ(0, 0, 0), 0)); err == nil || err.Error() != expError {
		t.Fatalf("expected to get %s; got %v", expError, err)
	}

	if len(sc.Surfaces) != 1 {
		t.Fatalf("expected scene to contain 1 surface; got %d", len(sc.Surfaces))
	}
}

func TestDefaultScene(t *testing.T) {
	sc := NewDefaultScene(DefaultCameraOptions())
	if sc.Camera == nil {
		t.Fatal("expected default scene to define a camera")
	}
	if len(sc.Surfaces) != 2 {
		t.Fatalf("expected default scene to contain 2 surfaces; got %d", len(sc.Surfaces))
	}
}

func TestCameraRays(t *testing.T) {
	cam := NewCamera(DefaultCameraOptions())
	aspect := float32(16.0 / 9.0)

	type spec struct {
		u, v   float32
		expDir types.Vec3
	}
	specs := []spec{
		spec{0.5, 0.5, types.XYZ(0, 0, -1)},
		spec{0, 0, types.XYZ(-aspect, -1, -1)},
		spec{1, 1, types.XYZ(aspect, 1, -1)},
		spec{0, 1, types.XYZ(-aspect, 1, -1)},
	}

	for index, s := range specs {
		r := cam.GetRay(s.u, s.v)
		if r.Origin != (types.Vec3{}) {
			t.Fatalf("[spec %d] expected ray origin to be the eye point; got %v", index, r.Origin)
		}
		if !r.Direction.ApproxEqual(s.expDir, testEps) {
			t.Fatalf("[spec %d] expected ray direction %v; got %v", index, s.expDir, r.Direction)
		}
	}
}

func TestCameraWithCustomOptions(t *testing.T) {
	cam := NewCamera(CameraOptions{
		AspectRatio:    1,
		ViewportHeight: 4,
		FocalLength:    2,
		Origin:         types.XYZ(1, 2, 3),
	})

	r := cam.GetRay(0.5, 0.5)
	if r.Origin != types.XYZ(1, 2, 3) {
		t.Fatalf("expected ray origin (1, 2, 3); got %v", r.Origin)
	}
	if !r.Direction.ApproxEqual(types.XYZ(0, 0, -2), testEps) {
		t.Fatalf("expected center ray direction (0, 0, -2); got %v", r.Direction)
	}

	r = cam.GetRay(1, 0)
	if !r.Direction.ApproxEqual(types.XYZ(2, -2, -2), testEps) {
		t.Fatalf("expected corner ray direction (2, -2, -2); got %v", r.Direction)
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: types.XYZ(1, 1, 1), Direction: types.XYZ(0, 2, 0)}
	if p := r.At(-0.5); p != types.XYZ(1, 0, 1) {
		t.Fatalf("expected (1, 0, 1); got %v", p)
	}
	if p := r.At(3); p != types.XYZ(1, 7, 1) {
		t.Fatalf("expected (1, 7, 1); got %v", p)
	}
}
