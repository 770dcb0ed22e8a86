package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// NewCheckerboardImage builds an image texture holding a 2D checkerboard pattern.
// Used in place of a decoded image when a scene has no texture file.
func NewCheckerboardImage(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]byte, 3*width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			color := color1
			if (x/checkSize+y/checkSize)%2 != 0 {
				color = color2
			}
			putPixel(pixels, 3*(y*width+x), color)
		}
	}

	return NewImageTexture(pixels, width, height)
}

func putPixel(pixels []byte, offset int, color core.Vec3) {
	c := color.Clamp(0, 1)
	pixels[offset] = byte(255.999 * c.X)
	pixels[offset+1] = byte(255.999 * c.Y)
	pixels[offset+2] = byte(255.999 * c.Z)
}
