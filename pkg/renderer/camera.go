package renderer

import (
	"fmt"

	"github.com/user/raycast/pkg/core"
)

// CameraConfig describes a view: a rectangle on the view plane and an eye
// point perpendicular to it.
type CameraConfig struct {
	WidthRay    core.Ray // view-plane horizontal axis; origin is the plane center
	HeightRay   core.Ray // view-plane vertical axis; must share the width ray's origin
	Distance    float64  // signed eye distance along the plane normal
	Cols        int      // horizontal sample count, at least 2
	Rows        int      // vertical sample count, at least 2
	PlaneWidth  float64  // world-space width of the sampled rectangle
	PlaneHeight float64  // world-space height of the sampled rectangle
}

// Camera casts one ray per pixel sample from its eye point through an
// evenly spaced grid on the view plane.
type Camera struct {
	config   CameraConfig
	position core.Vec3 // eye point
	unitW    core.Vec3
	unitH    core.Vec3
	start    core.Vec3 // view-plane corner for sample (0, 0)
}

// NewCamera creates a camera from a view configuration, validating the
// view-plane rays and sample counts.
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.WidthRay.Origin != config.HeightRay.Origin {
		return nil, fmt.Errorf("view rays must share an origin, got %v and %v",
			config.WidthRay.Origin, config.HeightRay.Origin)
	}
	if config.Cols < 2 || config.Rows < 2 {
		return nil, fmt.Errorf("sample counts must be at least 2, got %dx%d",
			config.Cols, config.Rows)
	}

	w := config.WidthRay.Direction()
	h := config.HeightRay.Direction()
	if w.Length() == 0 || h.Length() == 0 {
		return nil, fmt.Errorf("view-plane axes must have nonzero length")
	}

	normal := w.Cross(h)
	if normal.Length() == 0 {
		return nil, fmt.Errorf("view-plane axes must not be parallel")
	}

	unitW := w.Normalize()
	unitH := h.Normalize()
	planeOrigin := config.WidthRay.Origin

	return &Camera{
		config:   config,
		position: planeOrigin.Add(normal.Normalize().Multiply(config.Distance)),
		unitW:    unitW,
		unitH:    unitH,
		start: planeOrigin.
			Subtract(unitW.Multiply(config.PlaneWidth / 2)).
			Subtract(unitH.Multiply(config.PlaneHeight / 2)),
	}, nil
}

// Position returns the camera's eye point
func (c *Camera) Position() core.Vec3 {
	return c.position
}

// GetRay returns the ray from the eye through the view-plane sample at
// (col, row). Column 0, row 0 is the corner at start; samples are spaced
// so the last column and row land on the far edges of the rectangle.
func (c *Camera) GetRay(col, row int) core.Ray {
	point := c.start.
		Add(c.unitW.Multiply(c.config.PlaneWidth * float64(col) / float64(c.config.Cols-1))).
		Add(c.unitH.Multiply(c.config.PlaneHeight * float64(row) / float64(c.config.Rows-1)))
	return core.NewRay(c.position, point)
}
