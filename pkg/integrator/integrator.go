package integrator

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Radiance estimates the light arriving along ray. depth counts the bounces
	// already taken (0 for camera rays). Draws all randomness from sampler.
	Radiance(ray core.Ray, world *scene.Scene, sampler core.Sampler, depth int) core.Vec3
}

// Config controls the path tracer
type Config struct {
	MaxDepth      int  // Bounces after which recursion stops (emission is still counted)
	LightSampling bool // Aim diffuse bounces at the scene's lights when it has any
}

// DefaultConfig returns the standard settings: 50 bounces with light sampling
func DefaultConfig() Config {
	return Config{
		MaxDepth:      50,
		LightSampling: true,
	}
}

// ConfigFromSampling derives integrator settings from a scene's sampling config
func ConfigFromSampling(sampling scene.SamplingConfig) Config {
	config := DefaultConfig()
	if sampling.MaxDepth > 0 {
		config.MaxDepth = sampling.MaxDepth
	}
	config.LightSampling = sampling.LightSampling != scene.LightSamplingOff
	return config
}
