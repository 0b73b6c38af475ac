package texture

import (
	"math"

	"github.com/corewave/pathtracer/pkg/core"
)

// Checker is an object-space 3D checkerboard: the parity of
// floor(x/scale)+floor(y/scale)+floor(z/scale) selects between Even and Odd,
// so the pattern stays locked to the surface regardless of UV parameterization.
type Checker struct {
	InvScale   float64
	Even, Odd Texture
}

// NewChecker builds a checker pattern with the given cell size and two
// sub-textures.
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerSolid is a convenience constructor for two solid colors.
func NewCheckerSolid(scale float64, evenColor, oddColor core.Vec3) *Checker {
	return NewChecker(scale, NewSolid(evenColor), NewSolid(oddColor))
}

func (c *Checker) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(point.X * c.InvScale))
	y := int(math.Floor(point.Y * c.InvScale))
	z := int(math.Floor(point.Z * c.InvScale))

	sum := x + y + z
	if sum%2 < 0 {
		sum = -sum
	}
	if sum%2 == 0 {
		return c.Even.Value(uv, point)
	}
	return c.Odd.Value(uv, point)
}
