package geometry

import (
	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/material"
)

// Cube is an axis-aligned box built from six Quad faces. It does not
// support rotation directly; wrap it in Rotate for an oriented box.
type Cube struct {
	Min, Max core.Vec3
	Faces    Collection
}

// NewCube builds an axis-aligned cube spanning [min, max].
func NewCube(min, max core.Vec3, mat material.Material) *Cube {
	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	faces := NewCollection(
		NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, mat),  // front (+Z)
		NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, mat), // right (+X)
		NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, mat), // back (-Z)
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, mat),  // left (-X)
		NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), mat), // top (+Y)
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, mat),  // bottom (-Y)
	)

	return &Cube{Min: min, Max: max, Faces: faces}
}

func (c *Cube) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	return c.Faces.Hit(ray, tMin, tMax)
}

func (c *Cube) BoundingBox() core.AABB {
	return core.NewAABB(c.Min, c.Max)
}

func (c *Cube) PDFValue(origin, direction core.Vec3) float64 {
	return c.Faces.PDFValue(origin, direction)
}

func (c *Cube) Random(origin core.Vec3, sampler *core.Sampler) core.Vec3 {
	return c.Faces.Random(origin, sampler)
}

func (c *Cube) Lights() []Primitive {
	return c.Faces.Lights()
}
