package scene

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/user/raycast/pkg/core"
)

// BackgroundRadiance is the fixed ambient value returned for rays that
// intersect nothing.
const BackgroundRadiance = 0.05

// forwardEpsilon is the smallest projection along a viewing ray that
// still counts as being in front of the ray origin. Hits at or below it
// rank as unreachable.
const forwardEpsilon = 1e-4

// Scene aggregates solids and lights. It is built once by appending
// objects and is read-only afterwards, so any number of rays may be
// evaluated against it concurrently.
type Scene struct {
	solids []core.Solid
	lights []core.Light
}

// New creates an empty scene
func New() *Scene {
	return &Scene{}
}

// AddSolid appends a solid to the scene. Call only during construction,
// before any radiance evaluation.
func (s *Scene) AddSolid(solid core.Solid) {
	s.solids = append(s.solids, solid)
}

// AddLight appends a light to the scene. Call only during construction,
// before any radiance evaluation.
func (s *Scene) AddLight(light core.Light) {
	s.lights = append(s.lights, light)
}

// rank is the ordering key for candidate hits: the scalar projection of
// the hit along the viewing ray, with anything behind the origin pushed
// to infinity so it sorts last and never wins.
func rank(viewing core.Ray, hit core.Hit) float64 {
	proj := core.Projection(core.NewRay(viewing.Origin, hit.Point), viewing)
	if proj < forwardEpsilon {
		return math.Inf(1)
	}
	return proj
}

// FirstIntersection queries every solid for intersections with ray and
// returns the nearest hit in front of the ray origin, if any.
func (s *Scene) FirstIntersection(ray core.Ray) (core.Hit, bool) {
	var hits []core.Hit
	for _, solid := range s.solids {
		for _, point := range solid.Intersect(ray) {
			hits = append(hits, core.Hit{Solid: solid, Point: point})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		return rank(ray, hits[i]) < rank(ray, hits[j])
	})

	if len(hits) == 0 || math.IsInf(rank(ray, hits[0]), 1) {
		return core.Hit{}, false
	}
	return hits[0], true
}

// Radiance evaluates the light intensity along ray. The nearest solid
// shades the hit, recursing back into the scene for reflections; rays
// that hit nothing return the background value. Depth starts at 1 for
// primary rays and increments on every bounce.
func (s *Scene) Radiance(ray core.Ray, depth int) float64 {
	hit, ok := s.FirstIntersection(ray)
	if !ok {
		return BackgroundRadiance
	}
	return hit.Solid.Shade(hit.Point, ray, s, depth)
}

// DirectLight sums every light's contribution at point. The sum is not
// clamped and may exceed 1 or go negative.
func (s *Scene) DirectLight(point core.Vec3, incoming core.Ray) float64 {
	value := 0.0
	for _, light := range s.lights {
		value += light.Contribution(point, incoming, s)
	}
	return value
}

// String describes the scene's contents for startup printouts
func (s *Scene) String() string {
	var b strings.Builder
	b.WriteString("Scene containing objects:")
	for _, solid := range s.solids {
		b.WriteString("\n  ")
		writeDescription(&b, solid)
	}
	b.WriteString("\nand lights:")
	for _, light := range s.lights {
		b.WriteString("\n  ")
		writeDescription(&b, light)
	}
	return b.String()
}

func writeDescription(b *strings.Builder, v interface{}) {
	if str, ok := v.(fmt.Stringer); ok {
		b.WriteString(str.String())
	} else {
		b.WriteString("(unnamed)")
	}
}
