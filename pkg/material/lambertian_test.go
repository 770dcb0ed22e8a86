package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestLambertian_PDFCalculation(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Specular {
			t.Fatal("Lambertian scatter should not be specular")
		}

		// Sampled PDF must agree with ScatteringPDF for the same direction
		expectedPDF := lambertian.ScatteringPDF(ray, hit, scatter.Scattered)
		if math.Abs(scatter.PDF-expectedPDF) > 1e-10 {
			t.Errorf("PDF mismatch: got %f, expected %f", scatter.PDF, expectedPDF)
		}
	}
}

func TestLambertian_ScatteringPDFBelowSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name     string
		dir      core.Vec3
		expected float64
	}{
		{"Along normal", core.NewVec3(0, 1, 0), 1 / math.Pi},
		{"Unnormalized along normal", core.NewVec3(0, 5, 0), 1 / math.Pi},
		{"Grazing", core.NewVec3(1, 0, 0), 0},
		{"Below surface", core.NewVec3(0.3, -1, 0), 0},
		{"45 degrees", core.NewVec3(1, 1, 0), math.Cos(math.Pi/4) / math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lambertian.ScatteringPDF(ray, hit, core.NewRay(core.Vec3{}, tt.dir))
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestLambertian_PDFIntegratesToOne(t *testing.T) {
	// Uniform hemisphere estimate of ∫ pdf dω, density 1/2π
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	sampler := core.NewSeededSampler(5)

	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		dir := core.SampleOnUnitSphere(sampler.Get2D())
		if dir.Dot(normal) < 0 {
			dir = dir.Negate()
		}
		sum += lambertian.ScatteringPDF(ray, hit, core.NewRay(core.Vec3{}, dir)) * 2 * math.Pi
	}

	if integral := sum / n; math.Abs(integral-1) > 0.02 {
		t.Errorf("Expected pdf to integrate to 1, got %f", integral)
	}
}

func TestLambertian_EnergyConservation(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	hit := HitRecord{Normal: core.NewVec3(0, 0, 1)}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
	if scatter.Attenuation.MaxComponent() > 1 {
		t.Errorf("Attenuation %v exceeds 1 (energy violation)", scatter.Attenuation)
	}
}

func TestLambertian_PreservesRayTime(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := HitRecord{Point: core.NewVec3(1, 2, 3), Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRayAtTime(core.NewVec3(1, 3, 3), core.NewVec3(0, -1, 0), 0.7)

	scatter, _ := lambertian.Scatter(ray, hit, core.NewSeededSampler(1))
	if scatter.Scattered.Time != 0.7 {
		t.Errorf("Expected scattered time 0.7, got %f", scatter.Scattered.Time)
	}
	if scatter.Scattered.Origin != hit.Point {
		t.Errorf("Expected scattered origin %v, got %v", hit.Point, scatter.Scattered.Origin)
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	checker := NewSolidChecker(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	lambertian := NewTexturedLambertian(checker)

	hit := HitRecord{Point: core.NewVec3(0.1, 0.1, 0.1), Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	scatter, _ := lambertian.Scatter(ray, hit, core.NewSeededSampler(1))

	if want := checker.Value(hit.UV, hit.Point); scatter.Attenuation != want {
		t.Errorf("Expected textured attenuation %v, got %v", want, scatter.Attenuation)
	}
}
