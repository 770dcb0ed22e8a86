package renderer

import (
	"context"
	"image"
	"image/color"
	"math"
	"time"

	"golang.org/x/xerrors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	TileSize        int   // Edge length of each square tile
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed; each tile derives its own generator from it
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 100,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Raytracer renders a prepared scene into an image
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. The scene must already be preprocessed.
func NewRaytracer(s *scene.Scene, integratorInst integrator.Integrator, config Config, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:      s,
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// Render traces every pixel on the worker pool and tone maps the result once
// all tiles are done
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	width, height := rt.config.Width, rt.config.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, xerrors.Errorf("invalid image size %dx%d", width, height)
	}
	if rt.scene.Root == nil || rt.scene.Camera == nil {
		return nil, RenderStats{}, xerrors.New("scene has not been preprocessed")
	}

	start := time.Now()
	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	pool := NewWorkerPool(rt.config.NumWorkers)
	tileRenderer := NewTileRenderer(rt.scene, rt.integrator, width, height, rt.config.SamplesPerPixel)
	rt.logger.Printf("Rendering %dx%d at %d samples/pixel: %d tiles on %d workers\n",
		width, height, rt.config.SamplesPerPixel, len(tiles), pool.GetNumWorkers())

	tileStats := make([]RenderStats, len(tiles))
	err := pool.Run(ctx, tiles, func(tile *Tile) error {
		tileStats[tile.ID] = tileRenderer.RenderTile(tile, pixelStats)
		if verbose, ok := rt.logger.(VerboseLogger); ok && verbose.Verbose() {
			rt.logger.Printf("Tile %d/%d done %v\n", tile.ID+1, len(tiles), tile.Bounds)
		}
		return nil
	})
	if err != nil {
		return nil, RenderStats{}, xerrors.Errorf("while rendering tiles: %w", err)
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	for _, ts := range tileStats {
		stats.merge(ts)
	}
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)

	img := assembleImage(pixelStats)
	stats.Duration = time.Since(start)
	rt.logger.Printf("Render complete: %v\n", stats)

	return img, stats, nil
}

// assembleImage tone maps the mean of every pixel
func assembleImage(pixelStats [][]PixelStats) *image.RGBA {
	height := len(pixelStats)
	width := 0
	if height > 0 {
		width = len(pixelStats[0])
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, ToneMap(pixelStats[y][x].GetColor()))
		}
	}
	return img
}

// ToneMap converts linear radiance to an 8-bit color: clamp to [0,1], gamma 2
// via square root, then floor(255.999 * value). Non-finite channels become 0.
func ToneMap(linear core.Vec3) color.RGBA {
	quantize := func(v float64) uint8 {
		if math.IsNaN(v) {
			v = 0
		}
		v = math.Min(1, math.Max(0, v))
		return uint8(math.Floor(255.999 * math.Sqrt(v)))
	}
	return color.RGBA{
		R: quantize(linear.X),
		G: quantize(linear.Y),
		B: quantize(linear.Z),
		A: 255,
	}
}
