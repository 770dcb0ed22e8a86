package scene

import (
	"golang.org/x/xerrors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/lights"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Light sampling strategies
const (
	LightSamplingUniform  = "uniform"  // Pick every light with equal probability
	LightSamplingWeighted = "weighted" // Pick lights in proportion to their power
	LightSamplingOff      = "off"      // Never sample lights directly, follow material samples only
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	Objects        []geometry.Hittable // Objects in the scene
	Lights         []lights.Light      // Lights in the scene, also present in Objects
	LightSampler   lights.LightSampler // Built by Preprocess unless set by the scene
	Background     Background
	SamplingConfig SamplingConfig

	Root     geometry.Hittable // Acceleration structure over Objects, built by Preprocess
	BVHStats geometry.BVHStats
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int    // Image width
	Height          int    // Image height
	SamplesPerPixel int    // Number of rays per pixel
	MaxDepth        int    // Maximum ray bounce depth
	LightSampling   string // One of the LightSampling* strategies
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		LightSampling:   LightSamplingUniform,
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.Objects = append(s.Objects, objects...)
}

// AddRectLight adds a one-sided rectangular area light to the scene, both as geometry
// and as a light for direct sampling
func (s *Scene) AddRectLight(rect *geometry.AARect, emission core.Vec3, flipped bool) *lights.RectLight {
	light := lights.NewRectLight(rect, emission, flipped)
	s.Lights = append(s.Lights, light)
	s.Objects = append(s.Objects, light.Hittable())
	return light
}

// AddTexturedRectLight is AddRectLight with radiance driven by a texture
func (s *Scene) AddTexturedRectLight(rect *geometry.AARect, emit material.Texture, flipped bool) *lights.RectLight {
	light := lights.NewTexturedRectLight(rect, emit, flipped)
	s.Lights = append(s.Lights, light)
	s.Objects = append(s.Objects, light.Hittable())
	return light
}

// Preprocess prepares the scene for rendering: it builds the camera if needed,
// the BVH over the scene's objects for the shutter interval and the light sampler
func (s *Scene) Preprocess() error {
	if s.Camera == nil {
		s.Camera = geometry.NewCamera(s.CameraConfig)
	}
	time0, time1 := s.Camera.ShutterInterval()

	bvh, err := geometry.NewBVH(s.Objects, time0, time1)
	if err != nil {
		return xerrors.Errorf("while building scene BVH: %w", err)
	}
	s.Root = bvh
	s.BVHStats = bvh.Stats()

	if s.Background == nil {
		s.Background = BlackBackground{}
	}

	if s.LightSampler == nil {
		switch s.SamplingConfig.LightSampling {
		case LightSamplingWeighted:
			s.LightSampler = lights.NewWeightedLightSampler(s.Lights)
		case LightSamplingOff:
			s.LightSampler = lights.NewUniformLightSampler(nil)
		default:
			s.LightSampler = lights.NewUniformLightSampler(s.Lights)
		}
	}

	return nil
}
