package geometry

import "github.com/corewave/pathtracer/pkg/core"

// Translate offsets a primitive in world space by shifting incoming rays
// into the primitive's local space before testing, then shifting the hit
// point back out.
type Translate struct {
	Primitive Primitive
	Offset    core.Vec3
}

// NewTranslate wraps primitive, shifting it by offset.
func NewTranslate(primitive Primitive, offset core.Vec3) *Translate {
	return &Translate{Primitive: primitive, Offset: offset}
}

func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	localRay := core.NewRayAtTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	rec, ok := tr.Primitive.Hit(localRay, tMin, tMax)
	if !ok {
		return nil, false
	}
	rec.Point = rec.Point.Add(tr.Offset)
	return rec, true
}

func (tr *Translate) BoundingBox() core.AABB {
	return tr.Primitive.BoundingBox().Translate(tr.Offset)
}

func (tr *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return tr.Primitive.PDFValue(origin.Subtract(tr.Offset), direction)
}

func (tr *Translate) Random(origin core.Vec3, sampler *core.Sampler) core.Vec3 {
	return tr.Primitive.Random(origin.Subtract(tr.Offset), sampler)
}

func (tr *Translate) Lights() []Primitive {
	lights := tr.Primitive.Lights()
	wrapped := make([]Primitive, len(lights))
	for i, l := range lights {
		if l == tr.Primitive {
			wrapped[i] = tr
		} else {
			wrapped[i] = NewTranslate(l, tr.Offset)
		}
	}
	return wrapped
}
