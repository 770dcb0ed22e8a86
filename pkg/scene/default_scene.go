package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// NewDefaultScene creates three spheres on a large ground sphere: a diffuse sphere
// moving upward during the shutter, fuzzy gold metal and a hollow glass shell
func NewDefaultScene(opts Options) (*Scene, error) {
	lookFrom := core.NewVec3(3, 3, 2)
	lookAt := core.NewVec3(0, 0, -1)
	cameraConfig := geometry.CameraConfig{
		Center:        lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   2.0,
		Aperture:      0.1,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
		Time0:         0.0,
		Time1:         1.0,
	}

	s := newScene(cameraConfig, opts, NewSkyGradient())

	center := core.NewVec3(0, 0, -1)
	s.Add(
		geometry.NewMovingSphere(center, center.Add(core.NewVec3(0, 0.2, 0)), 0.0, 1.0, 0.5,
			material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1)),

		// Negative radius flips the normals inward, leaving a thin glass shell
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), -0.45, material.NewDielectric(1.5)),
	)

	return s, nil
}
