package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Box represents a closed axis-aligned box made up of 6 rectangles.
// Faces on the min side are flipped so every normal points outward.
type Box struct {
	Min   core.Vec3
	Max   core.Vec3
	sides *HittableList
}

// NewBox creates a box spanning the corners p0 (min) and p1 (max)
func NewBox(p0, p1 core.Vec3, material material.Material) *Box {
	sides := NewHittableList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, material),
		NewFlipNormals(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, material)),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, material),
		NewFlipNormals(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, material)),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material),
		NewFlipNormals(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material)),
	)

	return &Box{Min: p0, Max: p1, sides: sides}
}

// Hit delegates to the six faces
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box's own extent
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
