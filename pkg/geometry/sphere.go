package geometry

import (
	"math"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/material"
)

// Sphere is a static sphere shape.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit tests if a ray intersects with the sphere.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

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
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	uv := sphereUV(outwardNormal)

	rec := &HitRecord{T: root, Material: s.Material}
	rec.Point = point
	rec.UV = uv
	rec.SetFaceNormal(ray, outwardNormal)

	return rec, true
}

// sphereUV maps a unit-sphere outward normal to spherical (u,v) coordinates.
func sphereUV(outwardNormal core.Vec3) core.Vec2 {
	return core.DirectionToSphereUV(outwardNormal)
}

// BoundingBox returns the axis-aligned bounding box for this sphere.
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}

// PDFValue is the solid-angle density of sampling this sphere as a light
// from origin, via the cone of directions that actually hits it.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, hit := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1)); !hit {
		return 0
	}

	distSquared := s.Center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSquared))
	return core.SphereConePDF(cosThetaMax)
}

// Random returns a direction from origin toward the sphere, importance
// sampled over the cone of directions that hit it.
func (s *Sphere) Random(origin core.Vec3, sampler *core.Sampler) core.Vec3 {
	direction := s.Center.Subtract(origin)
	distSquared := direction.LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSquared))

	return core.RandomSphereCone(direction.Normalize(), cosThetaMax, sampler)
}

// Lights reports this sphere if its material emits light.
func (s *Sphere) Lights() []Primitive {
	return lightsIfEmissive(s, s.Material)
}
