package material

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

const uniformSpherePDF = 1 / (4 * math.Pi)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly over the full sphere of directions
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates a new isotropic material with solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewConstantTexture(albedo)}
}

// NewTexturedIsotropic creates a new isotropic material with texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniform direction on the unit sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, core.SampleOnUnitSphere(sampler.Get2D()), rayIn.Time),
		Attenuation: i.Albedo.Value(hit.UV, hit.Point),
		PDF:         uniformSpherePDF,
	}, true
}

// ScatteringPDF is constant over the sphere
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return uniformSpherePDF
}

// Emitted returns black
func (i *Isotropic) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}
