package core

// Ray is a directed line given by its origin and a second point it passes
// through. The direction is derived from the two points and is not
// normalized; callers that need a unit direction normalize it themselves.
type Ray struct {
	Origin  Vec3
	Through Vec3
}

// NewRay creates a new ray from an origin point through a second point
func NewRay(origin, through Vec3) Ray {
	return Ray{Origin: origin, Through: through}
}

// Direction returns the (unnormalized) direction vector of the ray
func (r Ray) Direction() Vec3 {
	return r.Through.Subtract(r.Origin)
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction().Multiply(t))
}
