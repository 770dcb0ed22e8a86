package geometry

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// RectThickness pads the fixed axis of a rectangle's bounding box so the box has volume
const RectThickness = 0.0001

// Orientation selects which world axis an axis-aligned rectangle holds constant
type Orientation int

const (
	PlaneXY Orientation = iota // fixed Z, normal +Z
	PlaneXZ              // fixed Y, normal +Y
	PlaneYZ              // fixed X, normal +X
)

// axes returns the two in-plane axes and the fixed axis
func (p Orientation) axes() (a, b, k int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

func (p Orientation) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	default:
		return "yz"
	}
}

// AARect is an axis-aligned rectangle [A0,A1]x[B0,B1] on the plane where the fixed axis equals K.
// Its normal always points along the positive fixed axis.
type AARect struct {
	Plane    Orientation
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewXYRect creates a rectangle on the plane z=k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *AARect {
	return &AARect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material}
}

// NewXZRect creates a rectangle on the plane y=k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *AARect {
	return &AARect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material}
}

// NewYZRect creates a rectangle on the plane x=k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *AARect {
	return &AARect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material}
}

// Hit solves for the plane crossing and rejects points outside the bounds
func (r *AARect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	a, b, k := r.Plane.axes()

	// Parallel rays never cross the plane
	dk := ray.Direction.Axis(k)
	if math.Abs(dk) < 1e-12 {
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(k)) / dk
	if t <= tMin || t > tMax {
		return nil, false
	}

	pa := ray.Origin.Axis(a) + t*ray.Direction.Axis(a)
	pb := ray.Origin.Axis(b) + t*ray.Direction.Axis(b)
	if pa < r.A0 || pa > r.A1 || pb < r.B0 || pb > r.B1 {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   r.Normal(),
		UV:       core.NewVec2((pa-r.A0)/(r.A1-r.A0), (pb-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}, true
}

// BoundingBox returns the rectangle's bounds, thickened along the fixed axis
func (r *AARect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		r.point(r.A0, r.B0, r.K-RectThickness),
		r.point(r.A1, r.B1, r.K+RectThickness),
	), true
}

// Normal returns the rectangle's unit normal along the positive fixed axis
func (r *AARect) Normal() core.Vec3 {
	return r.point(0, 0, 1)
}

// Area returns the rectangle's surface area
func (r *AARect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PointAt maps a 2D sample in [0,1)² uniformly onto the rectangle
func (r *AARect) PointAt(sample core.Vec2) core.Vec3 {
	return r.point(
		r.A0+sample.X*(r.A1-r.A0),
		r.B0+sample.Y*(r.B1-r.B0),
		r.K,
	)
}

// point assembles a world-space vector from in-plane and fixed-axis coordinates
func (r *AARect) point(pa, pb, pk float64) core.Vec3 {
	var v [3]float64
	a, b, k := r.Plane.axes()
	v[a], v[b], v[k] = pa, pb, pk
	return core.NewVec3(v[0], v[1], v[2])
}
