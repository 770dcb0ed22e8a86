package lights

import "github.com/df07/go-weekend-raytracer/pkg/core"

// Light interface for emitters that can be sampled explicitly for direct lighting
type Light interface {
	// Sample picks a point on the light as seen from point.
	// Returns LightSample with direction FROM the shading point TO the light.
	// PDF is per unit solid angle and is 0 when the light cannot be seen from point.
	Sample(point core.Vec3, sample core.Vec2) LightSample

	// Power estimates the light's total output, used to weight light selection
	Power() float64
}

// LightSample contains information about a sampled point on a light
type LightSample struct {
	Point     core.Vec3 // Point on the light source
	Normal    core.Vec3 // Emitting-side normal at the sample point
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to light
	PDF       float64   // Solid-angle probability density of this sample
}

// LightSampler chooses which light to sample
type LightSampler interface {
	// SampleLight selects a light from a uniform u in [0,1) and returns the light,
	// its selection probability and its index
	SampleLight(u float64) (Light, float64, int)

	// LightCount returns the number of lights in this sampler
	LightCount() int
}
