package scene

import (
	"github.com/user/raycast/pkg/core"
	"github.com/user/raycast/pkg/geometry"
	"github.com/user/raycast/pkg/lights"
)

// NewDefaultScene builds the stock scene: three small spheres around the
// origin, a large backdrop sphere behind them, and a single light up and
// to the side. Colors are fixed so renders are reproducible.
func NewDefaultScene() (*Scene, error) {
	s := New()

	specs := []struct {
		center       core.Vec3
		radius       float64
		reflectivity float64
		color        float64
	}{
		{center: core.NewVec3(0, 0, 0), radius: 1, reflectivity: 0.5, color: 0.6},
		{center: core.NewVec3(3, 0, 0), radius: 1, reflectivity: 0.5, color: 0.3},
		{center: core.NewVec3(0, 4, 0), radius: 2, reflectivity: 1, color: 0.8}, // mirror
		{center: core.NewVec3(0, 0, 6), radius: 5, reflectivity: 0.5, color: 0.4},
	}

	for _, spec := range specs {
		sphere, err := geometry.NewSphere(spec.center, spec.radius, spec.reflectivity, spec.color)
		if err != nil {
			return nil, err
		}
		s.AddSolid(sphere)
	}

	s.AddLight(lights.NewPointLight(core.NewVec3(100, 100, 0)))
	return s, nil
}
