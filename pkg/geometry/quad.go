package geometry

import (
	"math"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/material"
)

// Quad is a parallelogram defined by a corner and two edge vectors.
type Quad struct {
	Corner   core.Vec3
	U        core.Vec3
	V        core.Vec3
	Normal   core.Vec3 // unit normal, U x V normalized
	Material material.Material
	D        float64   // plane equation constant: normal . p = D
	W        core.Vec3 // cached vector for the alpha/beta barycentric test
	Area     float64   // |U x V|, used to convert solid-angle PDFs to area
}

// NewQuad creates a quad from a corner point and two edge vectors.
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()
	d := normal.Dot(corner)
	w := normal.Multiply(1.0 / normal.Dot(cross))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		D:        d,
		W:        w,
		Area:     cross.Length(),
	}
}

// Hit tests if a ray intersects with the quad.
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	rec := &HitRecord{T: t, Material: q.Material}
	rec.Point = hitPoint
	rec.UV = core.NewVec2(alpha, beta)
	rec.SetFaceNormal(ray, q.Normal)

	return rec, true
}

// BoundingBox returns the axis-aligned bounding box for this quad, padded
// to a non-zero thickness along its normal by core.NewAABBFromPoints.
func (q *Quad) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
}

// PDFValue is the solid-angle density of sampling this quad as a light from
// origin: distance^2 / (cosine * area), the standard area-light conversion.
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	rec, hit := q.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !hit {
		return 0
	}

	distSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Normalize().Dot(rec.Normal))
	if cosine < 1e-8 {
		return 0
	}

	return distSquared / (cosine * q.Area)
}

// Random returns a direction from origin toward a uniformly sampled point
// on the quad.
func (q *Quad) Random(origin core.Vec3, sampler *core.Sampler) core.Vec3 {
	point := q.Corner.Add(q.U.Multiply(sampler.Float64())).Add(q.V.Multiply(sampler.Float64()))
	return point.Subtract(origin)
}

// Lights reports this quad if its material emits light.
func (q *Quad) Lights() []Primitive {
	return lightsIfEmissive(q, q.Material)
}
