package renderer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/xerrors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/loaders"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// recordingLogger collects log lines for assertions
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// MockIntegrator returns a fixed color and counts calls
type MockIntegrator struct {
	mu          sync.Mutex
	returnColor core.Vec3
	callCount   int
}

func (m *MockIntegrator) Radiance(ray core.Ray, world *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()
	return m.returnColor
}

// createTestScene builds a prepared scene: a diffuse sphere in front of the camera under a sky
func createTestScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := &scene.Scene{
		CameraConfig: geometry.CameraConfig{
			Center:      core.NewVec3(0, 0, 0),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        90,
			AspectRatio: 2,
		},
		Background:     scene.NewSkyGradient(),
		SamplingConfig: scene.DefaultSamplingConfig(),
	}
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	if err := s.Preprocess(); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	return s
}

func TestToneMap(t *testing.T) {
	tests := []struct {
		name   string
		linear core.Vec3
		want   color.RGBA
	}{
		{"Black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"White", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"Quarter is half after gamma", core.NewVec3(0.25, 0.25, 0.25), color.RGBA{127, 127, 127, 255}},
		{"Over-bright clamps", core.NewVec3(7, 1.5, 100), color.RGBA{255, 255, 255, 255}},
		{"Negative clamps", core.NewVec3(-1, -0.1, 0), color.RGBA{0, 0, 0, 255}},
		{"NaN is black", core.NewVec3(math.NaN(), 1, 0), color.RGBA{0, 255, 0, 255}},
		{"Mixed", core.NewVec3(0.04, 0.81, 0.01), color.RGBA{51, 230, 25, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToneMap(tt.linear); got != tt.want {
				t.Errorf("ToneMap(%v) = %v, want %v", tt.linear, got, tt.want)
			}
		})
	}
}

func TestNewTileGrid_CoversImageOnce(t *testing.T) {
	tests := []struct {
		width, height, tileSize int
		wantTiles               int
	}{
		{64, 64, 32, 4},
		{100, 50, 32, 8},
		{7, 3, 64, 1},
		{10, 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d/%d", tt.width, tt.height, tt.tileSize), func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize, 1)
			if len(tiles) != tt.wantTiles {
				t.Errorf("Expected %d tiles, got %d", tt.wantTiles, len(tiles))
			}

			covered := make([]int, tt.width*tt.height)
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Tile %d has id %d", i, tile.ID)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[y*tt.width+x]++
					}
				}
			}
			for i, c := range covered {
				if c != 1 {
					t.Fatalf("Pixel %d covered %d times", i, c)
				}
			}
		})
	}
}

func TestNewTile_SeededGenerators(t *testing.T) {
	bounds := image.Rect(0, 0, 8, 8)
	a := NewTile(3, bounds, 99).Random.Int63()
	b := NewTile(3, bounds, 99).Random.Int63()
	c := NewTile(4, bounds, 99).Random.Int63()
	d := NewTile(3, bounds, 100).Random.Int63()

	if a != b {
		t.Error("Same seed and id should give the same sequence")
	}
	if a == c || a == d {
		t.Error("Different ids or seeds should give different sequences")
	}
}

func TestWorkerPool_RunsEveryTile(t *testing.T) {
	tiles := NewTileGrid(100, 100, 10, 0)
	var mu sync.Mutex
	seen := map[int]int{}

	err := NewWorkerPool(4).Run(context.Background(), tiles, func(tile *Tile) error {
		mu.Lock()
		defer mu.Unlock()
		seen[tile.ID]++
		return nil
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(seen) != len(tiles) {
		t.Errorf("Expected %d tiles rendered, got %d", len(tiles), len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("Tile %d rendered %d times", id, n)
		}
	}
}

func TestWorkerPool_Errors(t *testing.T) {
	tiles := NewTileGrid(100, 100, 10, 0)
	boom := xerrors.New("boom")

	err := NewWorkerPool(3).Run(context.Background(), tiles, func(tile *Tile) error {
		if tile.ID == 5 {
			return boom
		}
		return nil
	})
	if !xerrors.Is(err, boom) {
		t.Errorf("Expected tile error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = NewWorkerPool(2).Run(ctx, tiles, func(tile *Tile) error { return nil })
	if !xerrors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	if NewWorkerPool(0).GetNumWorkers() < 1 {
		t.Error("Default pool should have at least one worker")
	}
	if got := NewWorkerPool(3).GetNumWorkers(); got != 3 {
		t.Errorf("Expected 3 workers, got %d", got)
	}
}

func TestTileRenderer_SamplesEveryPixel(t *testing.T) {
	s := createTestScene(t)
	mock := &MockIntegrator{returnColor: core.NewVec3(0.25, 0.5, 1)}
	tr := NewTileRenderer(s, mock, 20, 10, 3)

	pixelStats := make([][]PixelStats, 10)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, 20)
	}

	tile := NewTile(0, image.Rect(5, 2, 15, 6), 1)
	stats := tr.RenderTile(tile, pixelStats)

	if stats.TotalPixels != 40 || stats.TotalSamples != 120 {
		t.Errorf("Expected 40 pixels and 120 samples, got %+v", stats)
	}
	if mock.callCount != 120 {
		t.Errorf("Expected 120 integrator calls, got %d", mock.callCount)
	}
	for y := range pixelStats {
		for x := range pixelStats[y] {
			inside := image.Pt(x, y).In(tile.Bounds)
			if got := pixelStats[y][x].SampleCount; (got == 3) != inside {
				t.Fatalf("Pixel (%d,%d) inside=%v has %d samples", x, y, inside, got)
			}
		}
	}
	if got := pixelStats[3][7].GetColor(); got.Subtract(core.NewVec3(0.25, 0.5, 1)).Length() > 1e-12 {
		t.Errorf("Expected mean (0.25,0.5,1), got %v", got)
	}
}

func TestRaytracer_Render(t *testing.T) {
	s := createTestScene(t)
	logger := &recordingLogger{}
	config := Config{Width: 40, Height: 20, SamplesPerPixel: 4, TileSize: 8, NumWorkers: 3, Seed: 1}

	rt := NewRaytracer(s, integrator.NewPathTracingIntegrator(integrator.DefaultConfig()), config, logger)
	img, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if img.Bounds() != image.Rect(0, 0, 40, 20) {
		t.Errorf("Expected 40x20 image, got %v", img.Bounds())
	}
	if stats.TotalPixels != 800 || stats.TotalSamples != 3200 || stats.AverageSamples != 4 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.Tiles != 15 || stats.Workers != 3 {
		t.Errorf("Expected 15 tiles on 3 workers, got %+v", stats)
	}
	if len(logger.lines) == 0 {
		t.Error("Expected progress to be logged")
	}

	// Row 0 is the top of the image and sees the blue end of the sky
	top := img.RGBAAt(0, 0)
	bottom := img.RGBAAt(0, 19)
	if top.R >= bottom.R {
		t.Errorf("Expected bluer sky at the top: top %v, bottom %v", top, bottom)
	}
	for _, c := range []color.RGBA{top, bottom} {
		if c.B != 255 {
			t.Errorf("Sky blue channel should saturate, got %v", c)
		}
	}
}

func TestRaytracer_DeterministicAcrossWorkers(t *testing.T) {
	s := createTestScene(t)
	pt := integrator.NewPathTracingIntegrator(integrator.DefaultConfig())

	render := func(workers int) *image.RGBA {
		config := Config{Width: 32, Height: 16, SamplesPerPixel: 3, TileSize: 5, NumWorkers: workers, Seed: 7}
		img, _, err := NewRaytracer(s, pt, config, &recordingLogger{}).Render(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		return img
	}

	single := render(1)
	for _, workers := range []int{2, 8} {
		if diff := cmp.Diff(single.Pix, render(workers).Pix); diff != "" {
			t.Errorf("Image differs with %d workers:\n%s", workers, diff)
		}
	}
}

func TestRaytracer_Errors(t *testing.T) {
	pt := integrator.NewPathTracingIntegrator(integrator.DefaultConfig())

	unprepared := &scene.Scene{}
	if _, _, err := NewRaytracer(unprepared, pt, DefaultConfig(), &recordingLogger{}).Render(context.Background()); err == nil {
		t.Error("Expected error for unprepared scene")
	}

	config := DefaultConfig()
	config.Width = 0
	if _, _, err := NewRaytracer(createTestScene(t), pt, config, &recordingLogger{}).Render(context.Background()); err == nil {
		t.Error("Expected error for empty image")
	}
}

func TestWritePPM(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{12, 34, 56, 255})

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatal(err)
	}

	want := "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n12 34 56\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("PPM mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(2, 1, color.RGBA{10, 20, 30, 255})
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "out", "render.png")
	if err := SaveImage(pngPath, img, FormatFromPath(pngPath)); err != nil {
		t.Fatalf("SaveImage png failed: %v", err)
	}
	data, err := loaders.LoadImage(pngPath)
	if err != nil {
		t.Fatalf("Reading back png failed: %v", err)
	}
	if data.Width != 3 || data.Height != 2 || !bytes.Equal(data.Pixels[15:18], []byte{10, 20, 30}) {
		t.Errorf("Round-tripped png mismatch: %+v", data)
	}

	ppmPath := filepath.Join(dir, "render.ppm")
	if FormatFromPath(ppmPath) != FormatPPM {
		t.Errorf("Expected ppm format for %s", ppmPath)
	}
	if err := SaveImage(ppmPath, img, FormatPPM); err != nil {
		t.Fatalf("SaveImage ppm failed: %v", err)
	}

	if err := WriteImage(&bytes.Buffer{}, img, "gif"); !xerrors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestWriteImage_PNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{1, 2, 3, 255})

	var buf bytes.Buffer
	if err := WriteImage(&buf, img, FormatPNG); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if r, g, b, _ := decoded.At(0, 0).RGBA(); r>>8 != 1 || g>>8 != 2 || b>>8 != 3 {
		t.Errorf("Unexpected decoded pixel %v", decoded.At(0, 0))
	}
}
