package texture

import (
	"math"
	"math/rand"

	"github.com/corewave/pathtracer/pkg/core"
)

// PerlinKind selects how a Perlin texture maps raw noise to color.
type PerlinKind int

const (
	// PerlinPlain maps noise linearly from [-1,1] to [0,1] and tints Color.
	PerlinPlain PerlinKind = iota
	// PerlinTurbulence uses summed-octave turbulence as a grayscale intensity.
	PerlinTurbulence
	// PerlinMarble runs turbulence through a sine of the scaled coordinate,
	// producing the classic marble vein look.
	PerlinMarble
)

// Perlin is a procedural noise texture, evaluated in object space at Scale.
type Perlin struct {
	noise *perlinNoise
	Scale float64
	Color core.Vec3
	Kind  PerlinKind
	Depth int // turbulence octave count, used by Turbulence and Marble
}

// NewPerlin builds a Perlin texture seeded by rng, so a scene can get
// reproducible noise fields across renders.
func NewPerlin(rng *rand.Rand, scale float64, color core.Vec3, kind PerlinKind) *Perlin {
	return &Perlin{
		noise: newPerlinNoise(rng),
		Scale: scale,
		Color: color,
		Kind:  kind,
		Depth: 7,
	}
}

func (p *Perlin) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	scaled := point.Multiply(p.Scale)

	switch p.Kind {
	case PerlinTurbulence:
		intensity := p.noise.turbulence(scaled, p.Depth)
		return p.Color.Multiply(intensity)
	case PerlinMarble:
		intensity := 0.5 * (1 + math.Sin(scaled.Z+10*p.noise.turbulence(point, p.Depth)))
		return p.Color.Multiply(intensity)
	default: // PerlinPlain
		intensity := 0.5 * (1 + p.noise.noise(scaled))
		return p.Color.Multiply(intensity)
	}
}
