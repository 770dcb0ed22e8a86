package material

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Value(uv core.Vec2, point core.Vec3) core.Vec3
}

// ConstantTexture provides uniform color
type ConstantTexture struct {
	Color core.Vec3
}

// NewConstantTexture creates a new solid color texture
func NewConstantTexture(color core.Vec3) *ConstantTexture {
	return &ConstantTexture{Color: color}
}

// Value returns the solid color regardless of UV or position
func (c *ConstantTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	return c.Color
}

// CheckerTexture alternates between two textures by the sign of
// sin(10x)*sin(10y)*sin(10z). In 3D this yields axis-aligned stripes, not squares.
type CheckerTexture struct {
	Even Texture
	Odd  Texture
}

// NewCheckerTexture creates a checker texture from two child textures
func NewCheckerTexture(even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// NewSolidChecker creates a checker texture from two solid colors
func NewSolidChecker(even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewConstantTexture(even), NewConstantTexture(odd))
}

// Value selects the child texture by the sign of the sinusoid product
func (c *CheckerTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Value(uv, point)
	}
	return c.Even.Value(uv, point)
}

// NoiseTexture is a grey marble pattern: a sine wave along Z phase-shifted by turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a marble texture using the given noise generator
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale}
}

// Value returns 0.5*(1+sin(scale*z + 10*turb(p))) in every channel
func (n *NoiseTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	g := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.Noise.Turbulence(point, DefaultTurbulenceDepth)))
	return core.NewVec3(g, g, g)
}
