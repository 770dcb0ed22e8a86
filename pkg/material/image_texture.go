package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// MissingTextureColor is returned by image textures that have no pixel data
var MissingTextureColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a decoded 8-bit RGB buffer.
// Pixels are row-major with 3 bytes per pixel, row 0 at the top of the image.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []byte
}

// NewImageTexture creates a new image texture over an externally owned buffer
func NewImageTexture(pixels []byte, width, height int) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Value samples the texture at given UV coordinates using nearest-pixel lookup
func (t *ImageTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < 3*t.Width*t.Height {
		return MissingTextureColor
	}

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	i := int(uv.X * float64(t.Width))
	j := int((1-uv.Y)*float64(t.Height) - 0.001)

	// Clamp to image bounds
	if i < 0 {
		i = 0
	}
	if j < 0 {
		j = 0
	}
	if i > t.Width-1 {
		i = t.Width - 1
	}
	if j > t.Height-1 {
		j = t.Height - 1
	}

	offset := 3*i + 3*t.Width*j
	return core.NewVec3(
		float64(t.Pixels[offset])/255,
		float64(t.Pixels[offset+1])/255,
		float64(t.Pixels[offset+2])/255,
	)
}
