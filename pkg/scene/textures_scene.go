package scene

import (
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/loaders"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// NewTexturesScene shows the procedural and image textures: a checker ground,
// a Perlin marble sphere and a globe wrapped in opts.TexturePath
// (a generated checkerboard image when no path is given)
func NewTexturesScene(opts Options) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        30.0,
		AspectRatio: 2.0,
	}

	s := newScene(cameraConfig, opts, NewSkyGradient())

	checker := material.NewSolidChecker(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	perlin := material.NewPerlin(rand.New(rand.NewSource(opts.Seed)))
	marble := material.NewNoiseTexture(perlin, 4)
	s.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(marble)))

	globe, err := globeTexture(opts.TexturePath)
	if err != nil {
		return nil, err
	}
	s.Add(geometry.NewSphere(core.NewVec3(0, 2, 4), 2, material.NewTexturedLambertian(globe)))

	return s, nil
}

// globeTexture loads path, falling back to a generated checkerboard image
func globeTexture(path string) (*material.ImageTexture, error) {
	if path == "" {
		return material.NewCheckerboardImage(256, 128, 16,
			core.NewVec3(0.1, 0.3, 0.8),
			core.NewVec3(0.2, 0.7, 0.3),
		), nil
	}
	return loaders.LoadImageTexture(path)
}

// NewSimpleLightScene lights two marble spheres with a striped panel light
// in an otherwise black world
func NewSimpleLightScene(opts Options) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 2.0,
	}

	s := newScene(cameraConfig, opts, BlackBackground{})

	perlin := material.NewPerlin(rand.New(rand.NewSource(opts.Seed)))
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(perlin, 4))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	// Warm and cool stripes, facing +Z toward the camera side
	stripes := material.NewSolidChecker(core.NewVec3(4, 4, 4), core.NewVec3(4, 2, 0.8))
	s.AddTexturedRectLight(geometry.NewXYRect(3, 5, 1, 3, -2, nil), stripes, false)

	return s, nil
}
