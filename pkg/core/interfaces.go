package core

// BounceLimit is the maximum recursion depth for reflected rays. Shading
// at a depth beyond the limit falls back to the solid's base color with
// no further recursive evaluation.
const BounceLimit = 15

// Solid is a surface that rays can intersect and that knows how to shade
// itself. Variants may implement only part of the contract: a solid that
// does not support shading must document that restriction and fail loudly
// if shading is ever reached.
type Solid interface {
	// Intersect returns every point where the infinite line through ray
	// meets the surface, unfiltered.
	Intersect(ray Ray) []Vec3

	// NormalAt returns the surface normal at point as a ray from the
	// solid's reference point through point. The direction is not
	// normalized.
	NormalAt(point Vec3) Ray

	// Shade returns the radiance leaving point back along the incoming
	// ray, recursing into the world for reflected light until depth
	// exceeds the bounce limit.
	Shade(point Vec3, incoming Ray, world World, depth int) float64
}

// Light contributes illumination at surface points.
type Light interface {
	// Contribution returns this light's (unclamped) contribution at
	// point, or 0 if the point is shadowed.
	Contribution(point Vec3, incoming Ray, world World) float64
}

// Hit pairs an intersection point with the solid that owns it
type Hit struct {
	Solid Solid
	Point Vec3
}

// World resolves rays against a full scene. Solids and lights call back
// into it during shading; interfaces live here so geometry, lights and
// scene packages stay decoupled.
type World interface {
	// FirstIntersection returns the nearest forward hit of ray against
	// the scene, if any.
	FirstIntersection(ray Ray) (Hit, bool)

	// Radiance evaluates the light intensity along ray at the given
	// recursion depth.
	Radiance(ray Ray, depth int) float64

	// DirectLight sums every light's contribution at point.
	DirectLight(point Vec3, incoming Ray) float64
}
