package lights

import (
	"sort"
)

// UniformLightSampler picks every light with equal probability
type UniformLightSampler struct {
	lights []Light
}

// NewUniformLightSampler creates a uniform sampler over lights
func NewUniformLightSampler(lights []Light) *UniformLightSampler {
	return &UniformLightSampler{lights: lights}
}

// SampleLight selects a light uniformly
func (s *UniformLightSampler) SampleLight(u float64) (Light, float64, int) {
	n := len(s.lights)
	if n == 0 {
		return nil, 0, -1
	}
	index := int(u * float64(n))
	if index >= n {
		index = n - 1
	}
	return s.lights[index], s.LightProbability(index), index
}

// LightProbability returns 1/n for every valid index
func (s *UniformLightSampler) LightProbability(index int) float64 {
	if index < 0 || index >= len(s.lights) {
		return 0
	}
	return 1.0 / float64(len(s.lights))
}

// LightCount returns the number of lights
func (s *UniformLightSampler) LightCount() int {
	return len(s.lights)
}

// WeightedLightSampler picks lights in proportion to their power
type WeightedLightSampler struct {
	lights        []Light
	probabilities []float64
	cdf           []float64
}

// NewWeightedLightSampler builds a power-weighted sampler. Falls back to
// uniform weights when every light reports zero power.
func NewWeightedLightSampler(lights []Light) *WeightedLightSampler {
	weights := make([]float64, len(lights))
	total := 0.0
	for i, light := range lights {
		weights[i] = max(0, light.Power())
		total += weights[i]
	}
	if total == 0 {
		for i := range weights {
			weights[i] = 1
		}
		total = float64(len(weights))
	}

	probabilities := make([]float64, len(lights))
	cdf := make([]float64, len(lights))
	running := 0.0
	for i, w := range weights {
		probabilities[i] = w / total
		running += probabilities[i]
		cdf[i] = running
	}

	return &WeightedLightSampler{
		lights:        lights,
		probabilities: probabilities,
		cdf:           cdf,
	}
}

// SampleLight inverts the cumulative distribution with a binary search
func (s *WeightedLightSampler) SampleLight(u float64) (Light, float64, int) {
	n := len(s.lights)
	if n == 0 {
		return nil, 0, -1
	}

	// First bucket whose cumulative weight exceeds u, skipping zero-probability lights
	index := sort.Search(n, func(i int) bool { return s.cdf[i] > u })
	if index >= n {
		index = n - 1
		for index > 0 && s.probabilities[index] == 0 {
			index--
		}
	}
	return s.lights[index], s.LightProbability(index), index
}

// LightProbability returns the selection probability of the light at index
func (s *WeightedLightSampler) LightProbability(index int) float64 {
	if index < 0 || index >= len(s.probabilities) {
		return 0
	}
	return s.probabilities[index]
}

// LightCount returns the number of lights
func (s *WeightedLightSampler) LightCount() int {
	return len(s.lights)
}
