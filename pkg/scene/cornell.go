package scene

import (
	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/geometry"
	"github.com/corewave/pathtracer/pkg/material"
	"github.com/corewave/pathtracer/pkg/texture"
)

// NewCornellBox builds the classic Cornell box test scene: a 555-unit cube
// room (red left wall, green right wall, white remaining walls and
// ceiling/floor), a single quad light centered in the ceiling, and two
// rotated-and-translated boxes. Matches the literal dimensions used by the
// renderer's reference end-to-end scenario.
func NewCornellBox() *Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	cam := NewCamera(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 40, 1.0, 600)
	cam.Background = texture.NewSolid(core.Vec3{})

	s := NewScene(cam)

	s.Add(geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green))
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red))
	s.Add(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white))
	s.Add(geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white))
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white))

	var box1 geometry.Primitive = geometry.NewCube(core.Vec3{}, core.NewVec3(165, 330, 165), white)
	box1 = geometry.NewRotate(box1, 0, 15, 0)
	box1 = geometry.NewTranslate(box1, core.NewVec3(265, 0, 295))
	s.Add(box1)

	var box2 geometry.Primitive = geometry.NewCube(core.Vec3{}, core.NewVec3(165, 165, 165), white)
	box2 = geometry.NewRotate(box2, 0, -18, 0)
	box2 = geometry.NewTranslate(box2, core.NewVec3(130, 0, 65))
	s.Add(box2)

	return s
}
