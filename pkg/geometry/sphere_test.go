package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit(t *testing.T) {
	lambertian := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	tests := []struct {
		name           string
		center         core.Vec3
		radius         float64
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedPoint  core.Vec3
		expectedNormal core.Vec3
	}{
		{
			name:           "unit sphere at origin",
			center:         core.NewVec3(0, 0, 0),
			radius:         1,
			rayOrigin:      core.NewVec3(0, 0, -5),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      4,
			expectedPoint:  core.NewVec3(0, 0, -1),
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "from inside takes far root",
			center:         core.NewVec3(0, 0, 0),
			radius:         1,
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1,
			expectedPoint:  core.NewVec3(0, 0, 1),
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "negative radius flips normal",
			center:         core.NewVec3(0, 0, 0),
			radius:         -1,
			rayOrigin:      core.NewVec3(0, 0, -5),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      4,
			expectedPoint:  core.NewVec3(0, 0, -1),
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "unnormalized direction",
			center:         core.NewVec3(0, 0, 0),
			radius:         1,
			rayOrigin:      core.NewVec3(0, 0, -5),
			rayDirection:   core.NewVec3(0, 0, 2),
			expectedT:      2,
			expectedPoint:  core.NewVec3(0, 0, -1),
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, lambertian)
			hit, isHit := sphere.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection), 0.001, math.Inf(1), nil)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if diff := cmp.Diff(tt.expectedPoint, hit.Point, approx); diff != "" {
				t.Errorf("Point mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.expectedNormal, hit.Normal, approx); diff != "" {
				t.Errorf("Normal mismatch (-want +got):\n%s", diff)
			}
			if hit.Material != lambertian {
				t.Error("Hit record should carry the sphere's material")
			}
		})
	}
}

func TestSphere_IntervalBounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	if _, ok := sphere.Hit(ray, 0.001, 3.9, nil); ok {
		t.Error("Hit beyond tMax should be rejected")
	}
	if hit, ok := sphere.Hit(ray, 4.5, 100, nil); !ok || math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected fallback to far root t=6, got %v %v", hit, ok)
	}
	if hit, ok := sphere.Hit(ray, 0.001, 4, nil); !ok || hit.T != 4 {
		t.Error("t equal to tMax should be accepted")
	}
}

func TestSphere_UV(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, nil)
	sampler := core.NewSeededSampler(1)

	for i := 0; i < 1000; i++ {
		target := sphere.Center.Add(core.SampleOnUnitSphere(sampler.Get2D()).Multiply(sphere.Radius))
		origin := sphere.Center.Add(target.Subtract(sphere.Center).Multiply(3))
		hit, ok := sphere.Hit(core.NewRay(origin, target.Subtract(origin)), 0.001, math.Inf(1), nil)
		if !ok {
			t.Fatalf("Expected hit toward %v", target)
		}
		if hit.UV.X < 0 || hit.UV.X > 1 || hit.UV.Y < 0 || hit.UV.Y > 1 {
			t.Fatalf("UV %v out of range", hit.UV)
		}
	}

	top, _ := sphere.Hit(core.NewRay(core.NewVec3(1, 10, 3), core.NewVec3(0, -1, 0)), 0.001, math.Inf(1), nil)
	if math.Abs(top.UV.Y-1) > 1e-9 {
		t.Errorf("Expected v=1 at the north pole, got %f", top.UV.Y)
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0, 1, 0.5, nil)

	if c := sphere.Center(0.5); c != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected center (0,1,0) at t=0.5, got %v", c)
	}

	// A horizontal ray at y=2 only hits once the sphere has moved up
	origin := core.NewVec3(-5, 2, 0)
	dir := core.NewVec3(1, 0, 0)
	if _, ok := sphere.Hit(core.NewRayAtTime(origin, dir, 0), 0.001, math.Inf(1), nil); ok {
		t.Error("Expected miss at time 0")
	}
	if _, ok := sphere.Hit(core.NewRayAtTime(origin, dir, 1), 0.001, math.Inf(1), nil); !ok {
		t.Error("Expected hit at time 1")
	}

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Moving sphere should have a bounding box")
	}
	want := core.NewAABB(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 2.5, 0.5))
	if diff := cmp.Diff(want, box, approx); diff != "" {
		t.Errorf("Bounding box mismatch (-want +got):\n%s", diff)
	}
}
