// Package material implements the BSDFs surfaces scatter light through:
// Lambertian diffuse, fuzzed Metal, Dielectric refraction, emissive
// DiffuseLight, and the Isotropic phase function used inside a
// participating medium.
package material

import (
	"github.com/corewave/pathtracer/pkg/core"
)

// HitContext is the surface information a material needs to scatter or
// emit light, independent of whatever accelerated it to the hit.
type HitContext struct {
	Point     core.Vec3
	Normal    core.Vec3
	UV        core.Vec2
	FrontFace bool
}

// SetFaceNormal orients Normal against the ray direction and records which
// side of the surface the ray arrived from.
func (h *HitContext) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// PDF is a directional probability density a material can ask to be
// importance-sampled against, rather than sampling its own BSDF directly.
// pkg/pdf's CosinePDF, HittablePDF and MixturePDF all satisfy this
// structurally.
type PDF interface {
	Value(direction core.Vec3) float64
	Generate(sampler *core.Sampler) core.Vec3
}

// ScatterRecord is the result of a material scattering an incoming ray.
// A specular material (Metal, Dielectric) sets IsSpecular and SpecularRay
// directly; a diffuse material instead returns a PDF for the caller to
// importance-sample and weight by ScatteringPDF.
type ScatterRecord struct {
	Attenuation core.Vec3
	IsSpecular  bool
	SpecularRay core.Ray
	PDF         PDF
}

// Material is the capability set every surface BSDF implements.
type Material interface {
	// Scatter proposes how an incoming ray interacts with the surface.
	// false means the ray is absorbed (no contribution).
	Scatter(rayIn core.Ray, hit HitContext, sampler *core.Sampler) (ScatterRecord, bool)

	// ScatteringPDF returns this material's own probability density for
	// having sampled `scattered` out of `hit`, used to weight samples drawn
	// from a different PDF (e.g. light importance sampling).
	ScatteringPDF(rayIn core.Ray, hit HitContext, scattered core.Ray) float64

	// Emit returns the radiance a material emits at hit, independent of any
	// incoming ray. Zero for non-emissive materials.
	Emit(rayIn core.Ray, hit HitContext) core.Vec3

	// IsEmissive reports whether Emit can ever return non-zero, so a scene
	// can harvest emissive primitives as lights without evaluating Emit.
	IsEmissive() bool
}
