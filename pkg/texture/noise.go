package texture

import (
	"math"
	"math/rand"

	"github.com/corewave/pathtracer/pkg/core"
)

const perlinPointCount = 256

// perlinNoise is a lattice-gradient noise generator: 256 random unit
// vectors indexed by three independently shuffled byte permutation tables,
// Hermite-smoothed and trilinearly interpolated between lattice corners.
type perlinNoise struct {
	randVec [perlinPointCount]core.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// newPerlinNoise builds a Perlin lattice from rng, so callers can get
// deterministic noise fields by seeding their own source.
func newPerlinNoise(rng *rand.Rand) *perlinNoise {
	p := &perlinNoise{}
	for i := 0; i < perlinPointCount; i++ {
		v := core.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		p.randVec[i] = v.Normalize()
	}
	p.permX = generatePerm(rng)
	p.permY = generatePerm(rng)
	p.permZ = generatePerm(rng)
	return p
}

func generatePerm(rng *rand.Rand) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// noise evaluates the smoothed lattice-gradient noise at p, in [-1,1].
func (pn *perlinNoise) noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.randVec[idx]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	var accum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// turbulence sums successively halved, doubled-frequency noise octaves -
// fractal Brownian motion used to build the marble texture's vein pattern.
func (pn *perlinNoise) turbulence(p core.Vec3, depth int) float64 {
	var accum float64
	temp := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * pn.noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}
