package scene

import (
	"golang.org/x/xerrors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ErrUnknownBackground is returned for background names ParseBackground does not know
var ErrUnknownBackground = xerrors.New("unknown background")

// Background gives the radiance carried by rays that leave the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// BlackBackground returns no light, for enclosed scenes lit by emitters
type BlackBackground struct{}

// Color returns black
func (BlackBackground) Color(ray core.Ray) core.Vec3 {
	return core.Vec3{}
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Radiance core.Vec3
}

// Color returns the solid color
func (b SolidBackground) Color(ray core.Ray) core.Vec3 {
	return b.Radiance
}

// SkyGradient blends from Bottom (looking straight down) to Top (straight up)
type SkyGradient struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// NewSkyGradient returns the classic white to light blue sky
func NewSkyGradient() SkyGradient {
	return SkyGradient{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color lerps on the height of the unit ray direction
func (s SkyGradient) Color(ray core.Ray) core.Vec3 {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return s.Bottom.Lerp(s.Top, t)
}

// ParseBackground maps a configuration name to a background policy.
// The empty string and "scene" mean keep the scene's own choice and return nil.
func ParseBackground(name string) (Background, error) {
	switch name {
	case "", "scene":
		return nil, nil
	case "black":
		return BlackBackground{}, nil
	case "sky":
		return NewSkyGradient(), nil
	case "white":
		return SolidBackground{Radiance: core.NewVec3(1, 1, 1)}, nil
	default:
		return nil, xerrors.Errorf("while parsing background %q: %w", name, ErrUnknownBackground)
	}
}
