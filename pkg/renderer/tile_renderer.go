package renderer

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene           *scene.Scene
	integrator      integrator.Integrator
	width, height   int
	samplesPerPixel int
}

// NewTileRenderer creates a new tile renderer for a width x height image
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator, width, height, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		scene:           s,
		integrator:      integratorInst,
		width:           width,
		height:          height,
		samplesPerPixel: max(1, samplesPerPixel),
	}
}

// RenderTile renders every pixel in tile into pixelStats, which is indexed [y][x]
// in image coordinates. Tiles never overlap, so concurrent calls write disjoint slots.
func (tr *TileRenderer) RenderTile(tile *Tile, pixelStats [][]PixelStats) RenderStats {
	sampler := core.NewRandomSampler(tile.Random)
	bounds := tile.Bounds

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			tr.samplePixel(x, y, &pixelStats[y][x], sampler)
		}
	}

	pixels := bounds.Dx() * bounds.Dy()
	return RenderStats{
		TotalPixels:  pixels,
		TotalSamples: pixels * tr.samplesPerPixel,
		Tiles:        1,
	}
}

// samplePixel averages jittered camera rays through image pixel (x, y).
// Image row 0 is the top, camera v=0 is the bottom.
func (tr *TileRenderer) samplePixel(x, y int, ps *PixelStats, sampler core.Sampler) {
	camera := tr.scene.Camera
	j := tr.height - 1 - y

	for s := 0; s < tr.samplesPerPixel; s++ {
		jitter := sampler.Get2D()
		u := (float64(x) + jitter.X) / float64(tr.width)
		v := (float64(j) + jitter.Y) / float64(tr.height)

		ray := camera.GetRay(u, v, sampler)
		ps.AddSample(tr.integrator.Radiance(ray, tr.scene, sampler, 0))
	}
}
