package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// DiffuseLight represents a one-sided light-emitting material.
// It emits only toward rays arriving from the side its normal faces.
type DiffuseLight struct {
	Emit Texture // Emitted radiance
}

// NewDiffuseLight creates a new emissive material with constant radiance
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewConstantTexture(emission)}
}

// NewTexturedDiffuseLight creates a new emissive material driven by a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter implements the Material interface for emissive materials.
// Lights absorb every incoming ray.
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// ScatteringPDF is zero, lights do not scatter
func (e *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the texture radiance when the ray approaches the front face
func (e *DiffuseLight) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	if !hit.IsFrontFace(rayIn) {
		return core.Vec3{}
	}
	return e.Emit.Value(hit.UV, hit.Point)
}
