package scene

import (
	"math/rand"

	"golang.org/x/xerrors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// NewFinalScene creates the showcase scene exercising every primitive, material and texture
func NewFinalScene(opts Options) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   1.0,
		Aperture:      0.0,
		FocusDistance: 10.0,
		Time0:         0.0,
		Time1:         1.0,
	}

	s := newScene(cameraConfig, opts, BlackBackground{})
	random := rand.New(rand.NewSource(opts.Seed))

	// Floor of boxes with random heights, grouped under their own BVH
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	floor := make([]geometry.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := 100 * (random.Float64() + 0.01)
			floor = append(floor, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	floorBVH, err := geometry.NewBVH(floor, 0, 1)
	if err != nil {
		return nil, xerrors.Errorf("while building floor: %w", err)
	}
	s.Add(floorBVH)

	s.AddRectLight(geometry.NewXZRect(123, 423, 147, 412, 554, nil), core.NewVec3(7, 7, 7), true)

	center := core.NewVec3(400, 400, 200)
	s.Add(
		geometry.NewMovingSphere(center, center.Add(core.NewVec3(30, 0, 0)), 0, 1, 50,
			material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 10.0)),
	)

	// Blue subsurface-looking sphere: glass shell filled with fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.Add(boundary, geometry.NewConstantMedium(boundary, 0.2, material.NewConstantTexture(core.NewVec3(0.2, 0.4, 0.9))))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.Add(geometry.NewConstantMedium(mist, 0.0001, material.NewConstantTexture(core.NewVec3(1, 1, 1))))

	globe, err := globeTexture(opts.TexturePath)
	if err != nil {
		return nil, err
	}
	s.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(globe)))

	perlin := material.NewPerlin(random)
	s.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(material.NewNoiseTexture(perlin, 0.1))))

	// Cluster of small white spheres, rotated and moved as one
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const clusterSize = 1000
	cluster := make([]geometry.Hittable, 0, clusterSize)
	for i := 0; i < clusterSize; i++ {
		p := core.NewVec3(165*random.Float64(), 165*random.Float64(), 165*random.Float64())
		cluster = append(cluster, geometry.NewSphere(p, 10, white))
	}
	clusterBVH, err := geometry.NewBVH(cluster, 0, 1)
	if err != nil {
		return nil, xerrors.Errorf("while building sphere cluster: %w", err)
	}
	s.Add(geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)))

	return s, nil
}
