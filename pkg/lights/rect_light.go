package lights

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// edgeOnCosine is the smallest light-side cosine that still counts as visible
const edgeOnCosine = 1e-6

// RectLight is an axis-aligned rectangular area light. It emits from one side only:
// along the rectangle's normal, or against it when flipped.
type RectLight struct {
	Rect     *geometry.AARect
	Emission core.Vec3
	Flipped  bool
	shape    geometry.Hittable
}

// NewRectLight turns rect into a light with the given radiance. The rect's
// material is replaced by a matching DiffuseLight.
func NewRectLight(rect *geometry.AARect, emission core.Vec3, flipped bool) *RectLight {
	return newRectLight(rect, material.NewDiffuseLight(emission), emission, flipped)
}

// NewTexturedRectLight turns rect into a light whose radiance varies over its
// surface. Emission holds the texture's mean over the rectangle and is only used
// to weight light selection.
func NewTexturedRectLight(rect *geometry.AARect, emit material.Texture, flipped bool) *RectLight {
	return newRectLight(rect, material.NewTexturedDiffuseLight(emit), meanEmission(rect, emit), flipped)
}

func newRectLight(rect *geometry.AARect, emitter *material.DiffuseLight, emission core.Vec3, flipped bool) *RectLight {
	rect.Material = emitter

	var shape geometry.Hittable = rect
	if flipped {
		shape = geometry.NewFlipNormals(rect)
	}

	return &RectLight{
		Rect:     rect,
		Emission: emission,
		Flipped:  flipped,
		shape:    shape,
	}
}

// meanEmissionGrid is the per-axis resolution used to average a textured emitter
const meanEmissionGrid = 8

// meanEmission averages emit at cell centers of a regular grid over rect
func meanEmission(rect *geometry.AARect, emit material.Texture) core.Vec3 {
	sum := core.Vec3{}
	for i := 0; i < meanEmissionGrid; i++ {
		for j := 0; j < meanEmissionGrid; j++ {
			uv := core.NewVec2((float64(i)+0.5)/meanEmissionGrid, (float64(j)+0.5)/meanEmissionGrid)
			sum = sum.Add(emit.Value(uv, rect.PointAt(uv)))
		}
	}
	return sum.Multiply(1.0 / (meanEmissionGrid * meanEmissionGrid))
}

// Hittable returns the geometry to add to the scene so the light is also visible to camera rays
func (l *RectLight) Hittable() geometry.Hittable {
	return l.shape
}

// Normal returns the unit normal of the emitting side
func (l *RectLight) Normal() core.Vec3 {
	if l.Flipped {
		return l.Rect.Normal().Negate()
	}
	return l.Rect.Normal()
}

// Sample picks a uniform point on the rectangle and converts the area density
// to solid angle: distance² / (|cos θ_light| * area)
func (l *RectLight) Sample(point core.Vec3, sample core.Vec2) LightSample {
	samplePoint := l.Rect.PointAt(sample)
	normal := l.Normal()

	toLight := samplePoint.Subtract(point)
	distance := toLight.Length()
	result := LightSample{
		Point:    samplePoint,
		Normal:   normal,
		Distance: distance,
	}
	if distance == 0 {
		return result
	}
	result.Direction = toLight.Multiply(1.0 / distance)

	// Shading point must be on the emitting side; edge-on counts as invisible
	cosine := -result.Direction.Dot(normal)
	area := l.Rect.Area()
	if cosine < edgeOnCosine || area <= 0 {
		return result
	}

	result.PDF = distance * distance / (cosine * area)
	return result
}

// Power returns luminance times area
func (l *RectLight) Power() float64 {
	return l.Emission.Luminance() * l.Rect.Area()
}
