package geometry

import (
	"math"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/material"
)

// ConstantMedium is a homogeneous participating medium filling Boundary:
// a ray passing through it scatters at a point sampled by exponential
// free-flight along the segment inside the boundary, with probability
// increasing with Density. It is never treated as a light.
type ConstantMedium struct {
	nonSamplable
	Boundary      Primitive
	NegInvDensity float64
	PhaseFunction material.Material
}

// NewConstantMedium builds a medium of the given density filling boundary,
// scattering through phaseFunction.
func NewConstantMedium(boundary Primitive, density float64, phaseFunction material.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: phaseFunction,
	}
}

// Hit finds where ray enters and exits Boundary, then samples an
// exponentially distributed free-flight distance inside that segment; if
// the sampled distance lands within the segment, the ray scatters there.
// Requires ray.Sampler to be set.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	rec1, hit1 := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !hit1 {
		return nil, false
	}
	rec2, hit2 := m.Boundary.Hit(ray, rec1.T+0.0001, math.Inf(1))
	if !hit2 {
		return nil, false
	}

	entryT := math.Max(rec1.T, tMin)
	exitT := math.Min(rec2.T, tMax)
	if entryT >= exitT {
		return nil, false
	}
	entryT = math.Max(entryT, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (exitT - entryT) * rayLength
	hitDistance := m.NegInvDensity * math.Log(ray.Sampler.Float64())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := entryT + hitDistance/rayLength
	rec := &HitRecord{T: t, Material: m.PhaseFunction}
	rec.Point = ray.At(t)
	rec.Normal = core.NewVec3(1, 0, 0) // arbitrary: isotropic scattering ignores it
	rec.FrontFace = true

	return rec, true
}

// BoundingBox returns the boundary's bounding box.
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}

// Lights always returns nil: a participating medium is never a light.
func (m *ConstantMedium) Lights() []Primitive {
	return nil
}
