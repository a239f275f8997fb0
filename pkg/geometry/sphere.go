package geometry

import (
	"fmt"
	"sort"

	"github.com/user/raycast/pkg/core"
)

// Sphere is a reflective solid with a scalar base color. Reflectivity
// splits shading between the mirrored ray and direct lighting; the base
// color only surfaces once the bounce budget is spent.
type Sphere struct {
	Center       core.Vec3
	Radius       float64
	Reflectivity float64
	Color        float64
}

// NewSphere creates a new sphere, validating its parameters. Radius must
// be positive; reflectivity and color must lie in [0, 1].
func NewSphere(center core.Vec3, radius, reflectivity, color float64) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %f", radius)
	}
	if reflectivity < 0 || reflectivity > 1 {
		return nil, fmt.Errorf("sphere reflectivity must be in [0,1], got %f", reflectivity)
	}
	if color < 0 || color > 1 {
		return nil, fmt.Errorf("sphere color must be in [0,1], got %f", color)
	}
	return &Sphere{
		Center:       center,
		Radius:       radius,
		Reflectivity: reflectivity,
		Color:        color,
	}, nil
}

// Intersect returns every point where the infinite line through ray meets
// the sphere, unfiltered.
func (s *Sphere) Intersect(ray core.Ray) []core.Vec3 {
	return core.LineSphereIntersections(ray, s.Center, s.Radius)
}

// FirstIntersection returns the intersection point closest to the ray
// origin, if the line meets the sphere at all.
func (s *Sphere) FirstIntersection(ray core.Ray) (core.Vec3, bool) {
	points := s.Intersect(ray)
	if len(points) == 0 {
		return core.Vec3{}, false
	}
	sort.Slice(points, func(i, j int) bool {
		return ray.Origin.Distance(points[i]) < ray.Origin.Distance(points[j])
	})
	return points[0], true
}

// NormalAt returns the surface normal at point as a ray from the sphere
// center through point. The direction is not normalized.
func (s *Sphere) NormalAt(point core.Vec3) core.Ray {
	return core.NewRay(s.Center, point)
}

// Bounce reflects the incoming ray off the surface at point. Both the
// incoming direction and the normal are normalized before applying the
// law of reflection, and the result starts at point.
func (s *Sphere) Bounce(incoming core.Ray, point core.Vec3) core.Ray {
	normal := s.NormalAt(point).Direction().Normalize()
	dir := incoming.Direction().Normalize()

	// reflected = d - 2n(d·n)
	reflected := dir.Subtract(normal.Multiply(2 * dir.Dot(normal)))
	return core.NewRay(point, point.Add(reflected))
}

// Shade returns the radiance at point looking back along the incoming
// ray. Past the bounce limit it terminates with the base color; below it,
// radiance is the reflectivity-weighted mix of the bounced ray's radiance
// and the direct lighting at point. The base color carries zero weight in
// that mix and only ever appears as the terminal value.
func (s *Sphere) Shade(point core.Vec3, incoming core.Ray, world core.World, depth int) float64 {
	if depth > core.BounceLimit {
		return s.Color
	}
	bounced := s.Bounce(incoming, point)
	return s.Reflectivity*world.Radiance(bounced, depth+1) +
		(1-s.Reflectivity)*world.DirectLight(point, incoming)
}

// String describes the sphere for scene printouts
func (s *Sphere) String() string {
	return fmt.Sprintf("Sphere of radius %g at (%g, %g, %g)",
		s.Radius, s.Center.X, s.Center.Y, s.Center.Z)
}
