package geometry

import (
	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/material"
)

// Triangle is a single triangle defined by three vertices, tested with the
// Moller-Trumbore algorithm: alpha >= 0, beta >= 0, alpha+beta <= 1.
// Triangles are never importance-sampled as lights; meshes loaded from OBJ
// files are not expected to double as emitters.
type Triangle struct {
	nonSamplable
	V0, V1, V2 core.Vec3
	Material   material.Material
	normal     core.Vec3
	bbox       core.AABB
}

// NewTriangle creates a triangle from three vertices, computing its flat
// face normal from the winding order.
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		normal:   edge1.Cross(edge2).Normalize(),
		bbox:     core.NewAABBFromPoints(v0, v1, v2),
	}
}

// Hit tests for an intersection using Moller-Trumbore, returning (u,v)
// barycentric coordinates of V1 and V2 as the surface UV.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if det > -1e-8 && det < 1e-8 {
		return nil, false
	}
	invDet := 1.0 / det

	s := ray.Origin.Subtract(t.V0)
	alpha := invDet * s.Dot(h)
	if alpha < 0 || alpha > 1 {
		return nil, false
	}

	q := s.Cross(edge1)
	beta := invDet * ray.Direction.Dot(q)
	if beta < 0 || alpha+beta > 1 {
		return nil, false
	}

	tHit := invDet * edge2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return nil, false
	}

	rec := &HitRecord{T: tHit, Material: t.Material}
	rec.Point = ray.At(tHit)
	rec.UV = core.NewVec2(alpha, beta)
	rec.SetFaceNormal(ray, t.normal)

	return rec, true
}

// BoundingBox returns the triangle's precomputed bounding box.
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Lights always returns nil: triangles are never treated as emitters.
func (t *Triangle) Lights() []Primitive {
	return nil
}

// UVRemap wraps a Primitive and replaces its hit UV with coordinates
// computed from a caller-supplied remapping function, used to flatten a
// mesh triangle's per-vertex UVs onto the barycentric (alpha,beta) Hit
// already reports.
type UVRemap struct {
	Primitive
	Remap func(alpha, beta float64) core.Vec2
}

// NewUVRemap wraps primitive so its hit UV is computed by remap(alpha,
// beta), where alpha and beta are the barycentric coordinates Hit reports.
func NewUVRemap(primitive Primitive, remap func(alpha, beta float64) core.Vec2) *UVRemap {
	return &UVRemap{Primitive: primitive, Remap: remap}
}

func (u *UVRemap) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	rec, ok := u.Primitive.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	rec.UV = u.Remap(rec.UV.X, rec.UV.Y)
	return rec, true
}

func (u *UVRemap) Lights() []Primitive {
	lights := u.Primitive.Lights()
	for i, l := range lights {
		if l == u.Primitive {
			lights[i] = u
		}
	}
	return lights
}
