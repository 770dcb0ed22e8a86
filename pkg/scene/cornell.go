package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const cornellSize = 555.0

func cornellCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   1.0,
		Aperture:      0.0,
		FocusDistance: 10.0,
		Time0:         0.0,
		Time1:         1.0,
	}
}

// addCornellWalls adds the five walls with every normal facing into the box
func addCornellWalls(s *Scene) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	s.Add(
		geometry.NewFlipNormals(geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green)), // right, x=555
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),                                      // left, x=0
		geometry.NewFlipNormals(geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white)), // ceiling
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),                                    // floor
		geometry.NewFlipNormals(geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white)), // back
	)
}

// cornellBoxes returns the short and tall blocks, rotated and placed on the floor
func cornellBoxes(mat material.Material) (short, tall geometry.Hittable) {
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat), -18),
		core.NewVec3(130, 0, 65),
	)
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), 15),
		core.NewVec3(265, 0, 295),
	)
	return short, tall
}

// NewCornellScene creates the classic Cornell box lit by a downward-facing ceiling light
func NewCornellScene(opts Options) (*Scene, error) {
	s := newScene(cornellCamera(), opts, BlackBackground{})
	addCornellWalls(s)

	// Just below the ceiling, emitting downward
	s.AddRectLight(geometry.NewXZRect(213, 343, 227, 332, 554, nil), core.NewVec3(15, 15, 15), true)

	short, tall := cornellBoxes(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	s.Add(short, tall)

	return s, nil
}

// NewCornellSmokeScene replaces the Cornell boxes with blocks of fog under a larger, dimmer light
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	s := newScene(cornellCamera(), opts, BlackBackground{})
	addCornellWalls(s)

	s.AddRectLight(geometry.NewXZRect(113, 443, 127, 432, 554, nil), core.NewVec3(7, 7, 7), true)

	short, tall := cornellBoxes(nil)
	s.Add(
		geometry.NewConstantMedium(short, 0.01, material.NewConstantTexture(core.NewVec3(1.0, 1.0, 1.0))),
		geometry.NewConstantMedium(tall, 0.01, material.NewConstantTexture(core.NewVec3(0.0, 0.0, 0.0))),
	)

	return s, nil
}
