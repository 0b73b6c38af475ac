// Package pdf implements the directional probability densities used to
// importance-sample scattered and next-event-estimation rays: a
// cosine-weighted hemisphere lobe, a uniform sphere, a light-importance
// density built on any primitive that can report pdf_value/random, and the
// 50/50 mixture of the two that the estimator actually samples from.
package pdf

import (
	"math"

	"github.com/corewave/pathtracer/pkg/core"
)

// PDF is a directional probability density that can be evaluated at a
// direction and sampled from. It matches material.PDF structurally so any
// type here is usable wherever a material.ScatterRecord wants one.
type PDF interface {
	Value(direction core.Vec3) float64
	Generate(sampler *core.Sampler) core.Vec3
}

// LightSampler is the subset of geometry.Primitive that HittablePDF needs.
// geometry.Primitive satisfies this structurally; this package never
// imports geometry to avoid a cycle (geometry imports material, and
// material.ScatterRecord.PDF is satisfied structurally by this package).
type LightSampler interface {
	PDFValue(origin, direction core.Vec3) float64
	Random(origin core.Vec3, sampler *core.Sampler) core.Vec3
}

// CosinePDF is the ideal importance sample for a Lambertian surface: its
// density is cos(theta)/pi in the hemisphere around Normal.
type CosinePDF struct {
	Normal core.Vec3
}

// NewCosinePDF builds a CosinePDF around the given surface normal.
func NewCosinePDF(normal core.Vec3) CosinePDF {
	return CosinePDF{Normal: normal}
}

func (p CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.Normal)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

func (p CosinePDF) Generate(sampler *core.Sampler) core.Vec3 {
	return core.RandomCosineDirection(p.Normal, sampler.Rand())
}

// UniformSpherePDF samples directions uniformly over the full sphere,
// density 1/(4*pi) everywhere. Used as the Isotropic phase function.
type UniformSpherePDF struct{}

func (UniformSpherePDF) Value(direction core.Vec3) float64 {
	return core.UniformSpherePDF()
}

func (UniformSpherePDF) Generate(sampler *core.Sampler) core.Vec3 {
	return core.RandomUnitVector(sampler)
}

// HittablePDF importance-samples directions toward a primitive (typically
// the scene's lights collection) from a fixed origin.
type HittablePDF struct {
	Target LightSampler
	Origin core.Vec3
}

// NewHittablePDF builds a HittablePDF targeting target from origin.
func NewHittablePDF(target LightSampler, origin core.Vec3) HittablePDF {
	return HittablePDF{Target: target, Origin: origin}
}

func (p HittablePDF) Value(direction core.Vec3) float64 {
	return p.Target.PDFValue(p.Origin, direction)
}

func (p HittablePDF) Generate(sampler *core.Sampler) core.Vec3 {
	return p.Target.Random(p.Origin, sampler)
}

// MixturePDF combines two PDFs with equal weight, trading off between a
// material's own BSDF lobe and direct light-importance sampling.
type MixturePDF struct {
	P0, P1 PDF
}

// NewMixturePDF builds the 50/50 mixture of p0 and p1.
func NewMixturePDF(p0, p1 PDF) MixturePDF {
	return MixturePDF{P0: p0, P1: p1}
}

func (p MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*p.P0.Value(direction) + 0.5*p.P1.Value(direction)
}

func (p MixturePDF) Generate(sampler *core.Sampler) core.Vec3 {
	if sampler.Float64() < 0.5 {
		return p.P0.Generate(sampler)
	}
	return p.P1.Generate(sampler)
}
