package material

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewConstantTexture(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := core.SampleCosineHemisphere(hit.Normal, sampler.Get2D()).Normalize()
	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)

	// PDF: cos(θ) / π
	pdf := math.Max(0, hit.Normal.Normalize().Dot(direction)) / math.Pi

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo.Value(hit.UV, hit.Point),
		PDF:         pdf,
	}, true
}

// ScatteringPDF returns max(0, cos θ)/π for the outgoing ray
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Normalize().Dot(scattered.Direction.Normalize())
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Emitted returns black, diffuse surfaces do not emit
func (l *Lambertian) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}
