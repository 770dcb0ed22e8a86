package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Tiles          int           // Number of tiles rendered
	Workers        int           // Number of concurrent workers
	Duration       time.Duration // Wall-clock render time
}

// String formats the stats for progress logs
func (s RenderStats) String() string {
	rate := 0.0
	if s.Duration > 0 {
		rate = float64(s.TotalSamples) / s.Duration.Seconds()
	}
	return fmt.Sprintf("%s pixels, %s samples (%.1f/pixel) in %d tiles on %d workers, %v (%s samples/s)",
		humanize.Comma(int64(s.TotalPixels)),
		humanize.Comma(int64(s.TotalSamples)),
		s.AverageSamples,
		s.Tiles,
		s.Workers,
		s.Duration.Round(time.Millisecond),
		humanize.Comma(int64(rate)),
	)
}

// merge adds a tile's counts into s
func (s *RenderStats) merge(tile RenderStats) {
	s.TotalPixels += tile.TotalPixels
	s.TotalSamples += tile.TotalSamples
	s.Tiles += tile.Tiles
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the arithmetic mean of the samples
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean luminance of an 8-bit image
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += core.NewVec3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255).Luminance()
		}
	}
	return total / float64(pixels)
}
