package renderer

import (
	"image"

	"github.com/user/raycast/pkg/core"
)

// World evaluates radiance along rays. Declared here so the renderer
// doesn't depend on the scene package directly.
type World interface {
	Radiance(ray core.Ray, depth int) float64
}

// Renderer produces a grayscale image by casting one ray per pixel
// through a camera into a world.
type Renderer struct {
	world  World
	camera *Camera
}

// NewRenderer creates a renderer for the given world and camera
func NewRenderer(world World, camera *Camera) *Renderer {
	return &Renderer{world: world, camera: camera}
}

// Render evaluates every camera ray and returns the grayscale image.
// Rows are written bottom-up so the vertical view-plane axis points up in
// the final image.
func (r *Renderer) Render() *image.Gray {
	cols := r.camera.config.Cols
	rows := r.camera.config.Rows
	img := image.NewGray(image.Rect(0, 0, cols, rows))

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			ray := r.camera.GetRay(col, row)
			value := r.world.Radiance(ray, 1)
			img.Pix[img.PixOffset(col, rows-1-row)] = quantize(value)
		}
	}
	return img
}

// quantize maps a radiance value to an 8-bit pixel, truncating 256·v and
// clamping to the valid range.
func quantize(value float64) uint8 {
	v := int(256 * value)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
