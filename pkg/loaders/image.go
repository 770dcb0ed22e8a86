package loaders

import (
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
	"golang.org/x/xerrors"

	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// ImageData contains a decoded image as a flat RGB byte buffer,
// three bytes per pixel, row-major with row 0 at the top
type ImageData struct {
	Width  int
	Height int
	Format string // Name of the decoder that recognised the data
	Pixels []byte
}

// LoadImage opens and decodes an image file
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, xerrors.Errorf("while opening image %q: %w", filename, err)
	}
	defer file.Close()

	data, err := DecodeImage(file)
	if err != nil {
		return nil, xerrors.Errorf("while loading image %q: %w", filename, err)
	}
	return data, nil
}

// DecodeImage decodes any registered format (PNG, JPEG, GIF, BMP, TIFF, WebP).
// Alpha is dropped.
func DecodeImage(r io.Reader) (*ImageData, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, xerrors.Errorf("while decoding image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]byte, 0, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// RGBA returns 16-bit channels
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels = append(pixels, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Format: format,
		Pixels: pixels,
	}, nil
}

// LoadImageTexture loads an image file straight into an image texture
func LoadImageTexture(filename string) (*material.ImageTexture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return material.NewImageTexture(data.Pixels, data.Width, data.Height), nil
}
