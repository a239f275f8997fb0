package geometry

import (
	"fmt"

	"github.com/user/raycast/pkg/core"
)

// Triangle is a depth-less plane given by three points. It is an
// intersection-only solid: rays can hit it, but it has no shading
// behavior. NormalAt, Bounce and Shade panic if reached; no built-in
// scene places a triangle where shading would be evaluated.
type Triangle struct {
	Points [3]core.Vec3
}

// NewTriangle creates a triangle from three points spanning a plane
func NewTriangle(p0, p1, p2 core.Vec3) (*Triangle, error) {
	normal := p1.Subtract(p0).Cross(p2.Subtract(p0))
	if normal.Length() == 0 {
		return nil, fmt.Errorf("triangle points are collinear: %v, %v, %v", p0, p1, p2)
	}
	return &Triangle{Points: [3]core.Vec3{p0, p1, p2}}, nil
}

// Intersect returns the intersection of the infinite line through ray
// with the triangle's supporting plane (0 or 1 points).
func (t *Triangle) Intersect(ray core.Ray) []core.Vec3 {
	return core.LinePlaneIntersection(ray, t.Points[0], t.Points[1], t.Points[2])
}

// NormalAt is not implemented for triangles
func (t *Triangle) NormalAt(point core.Vec3) core.Ray {
	panic("geometry: triangle normals are not implemented")
}

// Bounce is not implemented for triangles
func (t *Triangle) Bounce(incoming core.Ray, point core.Vec3) core.Ray {
	panic("geometry: triangle reflection is not implemented")
}

// Shade is not implemented for triangles
func (t *Triangle) Shade(point core.Vec3, incoming core.Ray, world core.World, depth int) float64 {
	panic("geometry: triangle shading is not implemented")
}

// String describes the triangle for scene printouts
func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle through %v, %v, %v", t.Points[0], t.Points[1], t.Points[2])
}
