// Package geometry implements the analytic primitives, the BVH that
// accelerates ray intersection against them, and the transform/medium
// wrappers that compose them.
package geometry

import (
	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/material"
)

// HitRecord describes a ray-primitive intersection.
type HitRecord struct {
	material.HitContext
	T        float64           // ray parameter at the hit
	Material material.Material // material of the hit surface
}

// Primitive is the capability set every renderable object implements:
// intersection, bounding, and the importance-sampling operations used when
// a primitive is sampled as a light.
type Primitive interface {
	// Hit tests for an intersection with the ray over t in [tMin, tMax].
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns the primitive's enclosing AABB.
	BoundingBox() core.AABB

	// PDFValue returns the probability density of sampling the direction
	// `direction` from `origin` via Random. Primitives that are never used
	// as light-sampling targets return 0.
	PDFValue(origin, direction core.Vec3) float64

	// Random returns a direction from origin toward the primitive,
	// distributed according to PDFValue. Arbitrary for non-samplable
	// primitives.
	Random(origin core.Vec3, sampler *core.Sampler) core.Vec3

	// Lights returns the transitive set of emissive primitives reachable
	// through this primitive (itself, if its material emits; its children,
	// if it is a wrapper or collection).
	Lights() []Primitive
}

// nonSamplable is embedded by primitives that are never used as explicit
// light-sampling targets (e.g. MovingSphere, per the spec's resolution
// forbidding moving lights by construction).
type nonSamplable struct{}

func (nonSamplable) PDFValue(origin, direction core.Vec3) float64 { return 0 }

func (nonSamplable) Random(origin core.Vec3, sampler *core.Sampler) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// lightsIfEmissive returns []Primitive{self} if mat emits light, else nil.
// Shared by every leaf primitive's Lights() implementation.
func lightsIfEmissive(self Primitive, mat material.Material) []Primitive {
	if mat != nil && mat.IsEmissive() {
		return []Primitive{self}
	}
	return nil
}
