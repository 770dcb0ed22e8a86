package geometry

import (
	"golang.org/x/xerrors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// ErrNoBoundingBox is returned when a structure that needs finite bounds
// is given an object that cannot report one
var ErrNoBoundingBox = xerrors.New("object has no bounding box")

// Hittable interface for objects that can be hit by rays
type Hittable interface {
	// Hit returns the nearest hit with tMin < t <= tMax. The sampler is
	// the calling worker's random source and is only drawn from by
	// stochastic primitives such as participating media.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the shutter interval.
	// Returns false for unbounded objects.
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
