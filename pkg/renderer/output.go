package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/xerrors"
)

// Output formats
const (
	FormatPNG = "png"
	FormatPPM = "ppm"
)

// ErrUnknownFormat is returned for output formats that cannot be written
var ErrUnknownFormat = xerrors.New("unknown image format")

// FormatFromPath picks an output format from a file extension, defaulting to PNG
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return FormatPPM
	default:
		return FormatPNG
	}
}

// WritePPM writes img as a plain-text PPM (P3): a header, then one "r g b" line per pixel,
// rows from top to bottom
func WritePPM(w io.Writer, img *image.RGBA) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteImage encodes img in the given format
func WriteImage(w io.Writer, img *image.RGBA, format string) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatPPM:
		return WritePPM(w, img)
	default:
		return xerrors.Errorf("while writing %q: %w", format, ErrUnknownFormat)
	}
}

// SaveImage writes img to path, creating parent directories as needed
func SaveImage(path string, img *image.RGBA, format string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return xerrors.Errorf("while creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return xerrors.Errorf("while creating %q: %w", path, err)
	}

	if err := WriteImage(f, img, format); err != nil {
		f.Close()
		return xerrors.Errorf("while encoding %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return xerrors.Errorf("while closing %q: %w", path, err)
	}
	return nil
}
