package lights

import (
	"fmt"
	"math"

	"github.com/user/raycast/pkg/core"
)

// sameHitTolerance is the maximum distance at which the scene's nearest
// intersection is considered to be the queried surface point. Anything
// farther means another surface occludes the point.
const sameHitTolerance = 1e-5

// PointLight is a light source with position but no geometric extent.
// Brightness is fixed at 1 by the constructor and reserved for future
// intensity scaling; contributions are pure cosine terms.
type PointLight struct {
	Position   core.Vec3
	Brightness float64
}

// NewPointLight creates a point light at the given position
func NewPointLight(position core.Vec3) *PointLight {
	return &PointLight{Position: position, Brightness: 1.0}
}

// Theta returns the angle, in [0, π], between the unit vector from the
// light to the surface point and the unit surface normal there. The
// normal is given as a ray whose origin is the surface point.
func (l *PointLight) Theta(normal core.Ray) float64 {
	toPoint := normal.Origin.Subtract(l.Position).Normalize()
	unitNormal := normal.Direction().Normalize()
	return math.Acos(toPoint.Dot(unitNormal))
}

// Contribution returns this light's contribution at point, shading along
// the original viewing ray: the scene's nearest hit on that ray must
// coincide with point (within tolerance), otherwise the point is shadowed
// and contributes 0. A visible point contributes cos(theta) at the
// matched surface normal, unclamped — surfaces facing away go negative.
func (l *PointLight) Contribution(point core.Vec3, incoming core.Ray, world core.World) float64 {
	hit, ok := world.FirstIntersection(incoming)
	if !ok {
		return 0
	}
	if hit.Point.Distance(point) >= sameHitTolerance {
		// A different surface is nearest along the viewing ray, so the
		// queried point is in shadow for this light.
		return 0
	}

	normal := hit.Solid.NormalAt(hit.Point)
	return math.Cos(l.Theta(normal))
}

// String describes the light for scene printouts
func (l *PointLight) String() string {
	return fmt.Sprintf("Light at (%g, %g, %g)", l.Position.X, l.Position.Y, l.Position.Z)
}
