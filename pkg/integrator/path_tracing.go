package integrator

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// rayEpsilon offsets new rays from the surface they leave
const rayEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with
// single-sample next-event estimation toward the scene's lights
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// Radiance computes the color for a single ray. Non-finite results are
// dropped to black at the camera ray so a single bad sample cannot poison a pixel.
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, world *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	color := pt.radiance(ray, world, sampler, depth)
	if depth == 0 {
		return zeroNonFinite(color)
	}
	return color
}

func (pt *PathTracingIntegrator) radiance(ray core.Ray, world *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := world.Root.Hit(ray, rayEpsilon, math.Inf(1), sampler)
	if !isHit {
		return pt.background(ray, world)
	}

	emitted := hit.Material.Emitted(ray, *hit)
	if depth >= pt.config.MaxDepth {
		return emitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	if scatter.IsSpecular() {
		incoming := pt.radiance(scatter.Scattered, world, sampler, depth+1)
		return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	if pt.config.LightSampling && world.LightSampler != nil && world.LightSampler.LightCount() > 0 {
		return emitted.Add(pt.sampleLight(ray, hit, scatter, world, sampler, depth))
	}

	return emitted.Add(pt.sampleMaterial(ray, hit, scatter, world, sampler, depth))
}

// sampleLight replaces the material's direction with one aimed at a point on a light.
// Returns black when the chosen point cannot be seen from the front of the light.
func (pt *PathTracingIntegrator) sampleLight(ray core.Ray, hit *material.HitRecord, scatter material.ScatterResult, world *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	light, pickProbability, _ := world.LightSampler.SampleLight(sampler.Get1D())
	if light == nil || pickProbability <= 0 {
		return core.Vec3{}
	}

	lightSample := light.Sample(hit.Point, sampler.Get2D())
	if lightSample.PDF <= 0 {
		return core.Vec3{}
	}

	toLight := core.NewRayAtTime(hit.Point, lightSample.Direction, ray.Time)
	pdf := lightSample.PDF * pickProbability
	return pt.weighted(ray, hit, scatter.Attenuation, toLight, pdf, world, sampler, depth)
}

// sampleMaterial follows the direction the material sampled itself
func (pt *PathTracingIntegrator) sampleMaterial(ray core.Ray, hit *material.HitRecord, scatter material.ScatterResult, world *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	return pt.weighted(ray, hit, scatter.Attenuation, scatter.Scattered, scatter.PDF, world, sampler, depth)
}

// weighted returns attenuation * scatteringPDF(direction) * Radiance(direction) / pdf
func (pt *PathTracingIntegrator) weighted(ray core.Ray, hit *material.HitRecord, attenuation core.Vec3, scattered core.Ray, pdf float64, world *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	if pdf <= 0 {
		return core.Vec3{}
	}
	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)
	if scatteringPDF <= 0 {
		return core.Vec3{}
	}

	incoming := pt.radiance(scattered, world, sampler, depth+1)
	return attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdf)
}

func (pt *PathTracingIntegrator) background(ray core.Ray, world *scene.Scene) core.Vec3 {
	if world.Background == nil {
		return core.Vec3{}
	}
	return world.Background.Color(ray)
}

// zeroNonFinite replaces NaN and infinite channels with 0
func zeroNonFinite(c core.Vec3) core.Vec3 {
	fix := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	}
	return core.NewVec3(fix(c.X), fix(c.Y), fix(c.Z))
}
