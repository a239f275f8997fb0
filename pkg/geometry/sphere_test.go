package geometry

import (
	"math"
	"testing"

	"github.com/user/raycast/pkg/core"
)

func vecsEqual(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

// stubWorld records the recursive calls Shade makes and feeds back fixed
// radiance and direct-light values.
type stubWorld struct {
	radiance      float64
	directLight   float64
	radianceCalls int
	lastRay       core.Ray
	lastDepth     int
}

func (w *stubWorld) FirstIntersection(ray core.Ray) (core.Hit, bool) {
	return core.Hit{}, false
}

func (w *stubWorld) Radiance(ray core.Ray, depth int) float64 {
	w.radianceCalls++
	w.lastRay = ray
	w.lastDepth = depth
	return w.radiance
}

func (w *stubWorld) DirectLight(point core.Vec3, incoming core.Ray) float64 {
	return w.directLight
}

func mustSphere(t *testing.T, center core.Vec3, radius, reflectivity, color float64) *Sphere {
	t.Helper()
	s, err := NewSphere(center, radius, reflectivity, color)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return s
}

func TestNewSphere_Validation(t *testing.T) {
	tests := []struct {
		name         string
		radius       float64
		reflectivity float64
		color        float64
		wantErr      bool
	}{
		{name: "valid", radius: 1, reflectivity: 0.5, color: 0.5, wantErr: false},
		{name: "zero radius", radius: 0, reflectivity: 0.5, color: 0.5, wantErr: true},
		{name: "negative radius", radius: -2, reflectivity: 0.5, color: 0.5, wantErr: true},
		{name: "reflectivity above one", radius: 1, reflectivity: 1.5, color: 0.5, wantErr: true},
		{name: "negative reflectivity", radius: 1, reflectivity: -0.1, color: 0.5, wantErr: true},
		{name: "color above one", radius: 1, reflectivity: 0.5, color: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSphere(core.NewVec3(0, 0, 0), tt.radius, tt.reflectivity, tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSphere error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestSphereIntersect_Unfiltered(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0, 0.5, 0.5)

	// Ray origin inside the forward span: one hit lies behind the
	// origin and must still be returned.
	ray := core.NewRay(core.NewVec3(4, 0, 0), core.NewVec3(3, 0, 0))
	points := sphere.Intersect(ray)

	if len(points) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(points))
	}
	if !vecsEqual(points[0], core.NewVec3(1, 0, 0), 1e-9) ||
		!vecsEqual(points[1], core.NewVec3(-1, 0, 0), 1e-9) {
		t.Errorf("Expected (1,0,0) and (-1,0,0), got %v", points)
	}
}

func TestSphereFirstIntersection(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0, 0.5, 0.5)
	ray := core.NewRay(core.NewVec3(4, 0, 0), core.NewVec3(3, 0, 0))

	point, ok := sphere.FirstIntersection(ray)
	if !ok {
		t.Fatal("Expected an intersection")
	}
	if !vecsEqual(point, core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected nearest intersection (1,0,0), got %v", point)
	}

	if _, ok := sphere.FirstIntersection(core.NewRay(core.NewVec3(4, 4, 0), core.NewVec3(4, 4, 1))); ok {
		t.Error("Expected no intersection for a line missing the sphere")
	}
}

func TestSphereNormalAt(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(1, 2, 3), 2.0, 0.5, 0.5)
	normal := sphere.NormalAt(core.NewVec3(1, 2, 5))

	if !vecsEqual(normal.Origin, sphere.Center, 0) {
		t.Errorf("Normal ray should start at the center, got %v", normal.Origin)
	}
	if !vecsEqual(normal.Direction(), core.NewVec3(0, 0, 2), 1e-12) {
		t.Errorf("Expected normal direction (0,0,2), got %v", normal.Direction())
	}
}

func TestSphereBounce(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0, 0.5, 0.5)
	invSqrt2 := 1 / math.Sqrt2

	tests := []struct {
		name            string
		incoming        core.Ray
		hit             core.Vec3
		expectedThrough core.Vec3
	}{
		{
			name:            "straight back along the normal",
			incoming:        core.NewRay(core.NewVec3(0, 0, 4), core.NewVec3(0, 0, 3)),
			hit:             core.NewVec3(0, 0, 1),
			expectedThrough: core.NewVec3(0, 0, 2),
		},
		{
			name:            "45 degree reflection",
			incoming:        core.NewRay(core.NewVec3(0, 3, 4), core.NewVec3(0, 2, 3)),
			hit:             core.NewVec3(0, 0, 1),
			expectedThrough: core.NewVec3(0, -invSqrt2, 1+invSqrt2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounced := sphere.Bounce(tt.incoming, tt.hit)
			if !vecsEqual(bounced.Origin, tt.hit, 1e-9) {
				t.Errorf("Bounced ray should start at hit point, got %v", bounced.Origin)
			}
			if !vecsEqual(bounced.Through, tt.expectedThrough, 1e-9) {
				t.Errorf("Expected bounced ray through %v, got %v", tt.expectedThrough, bounced.Through)
			}
		})
	}
}

func TestSphereShade_MixesBounceAndDirectLight(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0, 0.25, 0.9)
	world := &stubWorld{radiance: 0.8, directLight: 0.4}

	incoming := core.NewRay(core.NewVec3(0, 0, 4), core.NewVec3(0, 0, 3))
	got := sphere.Shade(core.NewVec3(0, 0, 1), incoming, world, 1)

	// 0.25*0.8 + 0.75*0.4; the base color contributes nothing here
	expected := 0.25*0.8 + 0.75*0.4
	if math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected shade %f, got %f", expected, got)
	}

	if world.radianceCalls != 1 {
		t.Fatalf("Expected one recursive radiance call, got %d", world.radianceCalls)
	}
	if world.lastDepth != 2 {
		t.Errorf("Expected recursion at depth 2, got %d", world.lastDepth)
	}
	if !vecsEqual(world.lastRay.Origin, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected recursion along the bounced ray, got origin %v", world.lastRay.Origin)
	}
}

func TestSphereShade_BounceLimitReturnsColor(t *testing.T) {
	// Past the bounce limit the base color is the terminal value and no
	// further recursion happens; this asymmetry is intentional.
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0, 0.25, 0.9)
	world := &stubWorld{radiance: 0.8, directLight: 0.4}

	incoming := core.NewRay(core.NewVec3(0, 0, 4), core.NewVec3(0, 0, 3))
	got := sphere.Shade(core.NewVec3(0, 0, 1), incoming, world, core.BounceLimit+1)

	if got != sphere.Color {
		t.Errorf("Expected terminal color %f, got %f", sphere.Color, got)
	}
	if world.radianceCalls != 0 {
		t.Errorf("Expected no recursion past the bounce limit, got %d calls", world.radianceCalls)
	}
}
