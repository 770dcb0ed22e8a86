package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Material interface for objects that can scatter or emit light
type Material interface {
	// Scatter samples an outgoing ray. Returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// ScatteringPDF evaluates the scattering density for an arbitrary outgoing ray.
	// Used to weight explicit light samples.
	ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64

	// Emitted returns the radiance the surface emits toward the incoming ray
	Emitted(rayIn core.Ray, hit HitRecord) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
	PDF         float64   // Density of Scattered.Direction (0 for specular materials)
	Specular    bool      // Delta scatterers have no usable PDF
}

// IsSpecular returns true for delta scattering, which carries no usable PDF
func (s ScatterResult) IsSpecular() bool {
	return s.Specular
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward surface normal as reported by the primitive, never flipped toward the ray
	UV       core.Vec2 // Surface parameterization in [0,1]x[0,1]
	Material Material  // Material of the hit object
}

// IsFrontFace reports whether the ray arrives from the side the normal faces
func (h HitRecord) IsFrontFace(ray core.Ray) bool {
	return ray.Direction.Dot(h.Normal) < 0
}
