package core

import "math"

// parallelEpsilon guards the plane solve against a line running parallel
// to the plane, where the denominator collapses to zero.
const parallelEpsilon = 1e-12

// LinePlaneIntersection returns the intersection points (0 or 1) of the
// infinite line through ray with the infinite plane defined by three
// points. A line parallel to the plane yields no intersection.
func LinePlaneIntersection(ray Ray, p0, p1, p2 Vec3) []Vec3 {
	normal := p1.Subtract(p0).Cross(p2.Subtract(p0))
	dir := ray.Direction()

	denom := normal.Dot(dir)
	if math.Abs(denom) < parallelEpsilon {
		return nil
	}

	t := normal.Dot(p0.Subtract(ray.Origin)) / denom
	return []Vec3{ray.At(t)}
}

// LineSphereIntersections returns the intersection points (0, 1 or 2) of
// the infinite line through ray with the given sphere. All real roots are
// returned, including points behind the ray origin; restricting to
// forward hits is the caller's job.
func LineSphereIntersections(ray Ray, center Vec3, radius float64) []Vec3 {
	dir := ray.Direction()

	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(center)
	a := dir.Dot(dir)
	if a == 0 {
		// Degenerate ray with coincident points
		return nil
	}
	halfB := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil
	}
	if discriminant == 0 {
		// Tangent line, single root
		return []Vec3{ray.At(-halfB / a)}
	}

	sqrtD := math.Sqrt(discriminant)
	return []Vec3{
		ray.At((-halfB - sqrtD) / a),
		ray.At((-halfB + sqrtD) / a),
	}
}

// Projection returns the scalar projection of a's direction vector onto
// the unit direction of b. Scenes use this as the ordering key for how
// far along a viewing ray a candidate hit lies.
func Projection(a, b Ray) float64 {
	return a.Direction().Dot(b.Direction().Normalize())
}
