package material

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	unitDirection := rayIn.Direction.Normalize()
	reflected := reflect(unitDirection, hit.Normal)

	// The normal is never flipped by the primitive, so its side tells inside from outside
	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if dn := unitDirection.Dot(hit.Normal); dn > 0 {
		// Leaving the material; Schlick wants the cosine on the air side
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = math.Sqrt(math.Max(0, 1-niOverNt*niOverNt*(1-dn*dn)))
	} else {
		// Entering from air
		outwardNormal = hit.Normal
		niOverNt = 1 / d.RefractiveIndex
		cosine = -dn
	}

	direction := reflected
	if refracted, ok := refract(unitDirection, outwardNormal, niOverNt); ok {
		if sampler.Get1D() >= Schlick(cosine, d.RefractiveIndex) {
			direction = refracted
		}
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: core.NewVec3(1, 1, 1), // clear glass absorbs nothing
		Specular:    true,
	}, true
}

// ScatteringPDF is zero for the delta lobes
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns black
func (d *Dielectric) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}

// refract bends unit vector v through a surface with normal n using Snell's law.
// Returns false when refraction is impossible (total internal reflection).
func refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	dt := v.Dot(n)
	discriminant := 1 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	return v.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Schlick calculates the Fresnel reflectance using Schlick's approximation
func Schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
