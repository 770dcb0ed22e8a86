package loaders

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// testImage is a 2x2 image: white, red on top; green, blue below
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

var testPixels = []byte{
	255, 255, 255, 255, 0, 0,
	0, 255, 0, 0, 0, 255,
}

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, testImage()); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	imageData, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if imageData.Width != 2 || imageData.Height != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
	}
	if imageData.Format != "png" {
		t.Errorf("Expected format png, got %q", imageData.Format)
	}
	if diff := cmp.Diff(testPixels, imageData.Pixels); diff != "" {
		t.Errorf("Pixel mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeImage_Formats(t *testing.T) {
	encoders := map[string]func(*bytes.Buffer) error{
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, testImage()) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, testImage()) },
		"tiff": func(b *bytes.Buffer) error { return tiff.Encode(b, testImage(), nil) },
	}

	for format, encode := range encoders {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf); err != nil {
				t.Fatalf("Failed to encode %s: %v", format, err)
			}
			data, err := DecodeImage(&buf)
			if err != nil {
				t.Fatalf("DecodeImage failed: %v", err)
			}
			if data.Format != format {
				t.Errorf("Expected format %s, got %s", format, data.Format)
			}
			if diff := cmp.Diff(testPixels, data.Pixels); diff != "" {
				t.Errorf("Pixel mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	if _, err := LoadImage("nonexistent.png"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
	if _, err := LoadImageTexture("nonexistent.png"); err == nil {
		t.Error("Expected error for non-existent texture, got nil")
	}
}

func TestDecodeImage_Garbage(t *testing.T) {
	if _, err := DecodeImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Expected error for undecodable data")
	}
}

func TestLoadImageTexture(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "globe.png")
	f, err := os.Create(testFile)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testImage()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	texture, err := LoadImageTexture(testFile)
	if err != nil {
		t.Fatalf("LoadImageTexture failed: %v", err)
	}

	// v=1 is the top row of the image
	if got := texture.Value(core.NewVec2(0.75, 0.99), core.Vec3{}); got != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected red at the top right, got %v", got)
	}
	if got := texture.Value(core.NewVec2(0.25, 0.01), core.Vec3{}); got != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected green at the bottom left, got %v", got)
	}
}
