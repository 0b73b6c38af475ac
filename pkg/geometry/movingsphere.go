package geometry

import (
	"math"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/material"
)

// MovingSphere is a sphere whose center interpolates linearly between
// Center0 at shutter time 0 and Center1 at shutter time 1, for motion blur.
// It is never sampled as a light: pdf_value/random on a moving target would
// need to account for the ray's own sampled time, which the mixture
// estimator doesn't thread through, so moving emitters are excluded by
// construction instead.
type MovingSphere struct {
	nonSamplable
	Center0, Center1 core.Vec3
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a sphere moving linearly from center0 to center1
// over the camera's shutter interval.
func NewMovingSphere(center0, center1 core.Vec3, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Radius: radius, Material: mat}
}

// CenterAt returns the sphere's center at shutter time t in [0,1].
func (s *MovingSphere) CenterAt(t float64) core.Vec3 {
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(t))
}

// Hit tests if a ray intersects with the sphere at the ray's own time.
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	center := s.CenterAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)

	rec := &HitRecord{T: root, Material: s.Material}
	rec.Point = point
	rec.UV = sphereUV(outwardNormal)
	rec.SetFaceNormal(ray, outwardNormal)

	return rec, true
}

// BoundingBox returns the union of the bounding boxes at both endpoints of
// the shutter interval.
func (s *MovingSphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.Center0.Subtract(radius), s.Center0.Add(radius))
	box1 := core.NewAABB(s.Center1.Subtract(radius), s.Center1.Add(radius))
	return box0.Union(box1)
}

// Lights always returns nil: moving primitives are never harvested as
// lights, regardless of their material.
func (s *MovingSphere) Lights() []Primitive {
	return nil
}
