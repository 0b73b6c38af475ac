package geometry

import "github.com/corewave/pathtracer/pkg/core"

// Collection is a flat, linearly-scanned group of primitives. It is the
// building block Cube uses for its six faces, and the container a scene
// uses to hold its harvested lights before wrapping one in a HittablePDF.
type Collection []Primitive

// NewCollection builds a Collection from the given primitives.
func NewCollection(primitives ...Primitive) Collection {
	return Collection(primitives)
}

// Hit finds the closest intersection among all members, shrinking the
// search interval as hits are found.
func (c Collection) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closest *HitRecord
	closestSoFar := tMax

	for _, p := range c {
		if rec, ok := p.Hit(ray, tMin, closestSoFar); ok {
			closest = rec
			closestSoFar = rec.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of every member's bounding box.
func (c Collection) BoundingBox() core.AABB {
	if len(c) == 0 {
		return core.AABB{}
	}
	box := c[0].BoundingBox()
	for _, p := range c[1:] {
		box = box.Union(p.BoundingBox())
	}
	return box
}

// PDFValue is the uniform average of each member's PDFValue, the standard
// way to treat a group of lights as a single importance-sampling target.
func (c Collection) PDFValue(origin, direction core.Vec3) float64 {
	if len(c) == 0 {
		return 0
	}
	var sum float64
	for _, p := range c {
		sum += p.PDFValue(origin, direction)
	}
	return sum / float64(len(c))
}

// Random picks a uniformly random member and samples a direction toward it.
func (c Collection) Random(origin core.Vec3, sampler *core.Sampler) core.Vec3 {
	if len(c) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	idx := sampler.Intn(len(c))
	return c[idx].Random(origin, sampler)
}

// Lights concatenates the lights harvested from every member.
func (c Collection) Lights() []Primitive {
	var lights []Primitive
	for _, p := range c {
		lights = append(lights, p.Lights()...)
	}
	return lights
}
