package geometry

import (
	"math"

	"github.com/corewave/pathtracer/pkg/core"
)

// Rotate applies a full three-axis Euler rotation R = Rz(yaw) * Ry(pitch) *
// Rx(roll) to a primitive, each angle given in degrees. Rays are rotated
// into the primitive's local frame by R's inverse (its transpose, since R
// is orthogonal) before testing, and the resulting point/normal are
// rotated back out by R.
type Rotate struct {
	Primitive Primitive
	m, mInv   [3][3]float64
	bbox      core.AABB
}

// NewRotate wraps primitive, rotating it by the given Euler angles in
// degrees: yaw around Z, then pitch around Y, then roll around X.
func NewRotate(primitive Primitive, yawDeg, pitchDeg, rollDeg float64) *Rotate {
	yaw := yawDeg * math.Pi / 180
	pitch := pitchDeg * math.Pi / 180
	roll := rollDeg * math.Pi / 180

	rz := rotZ(yaw)
	ry := rotY(pitch)
	rx := rotX(roll)

	m := matMul(matMul(rz, ry), rx)
	mInv := transpose(m)

	r := &Rotate{Primitive: primitive, m: m, mInv: mInv}
	r.bbox = r.computeBoundingBox()
	return r
}

func rotX(theta float64) [3][3]float64 {
	c, s := math.Cos(theta), math.Sin(theta)
	return [3][3]float64{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

func rotY(theta float64) [3][3]float64 {
	c, s := math.Cos(theta), math.Sin(theta)
	return [3][3]float64{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
}

func rotZ(theta float64) [3][3]float64 {
	c, s := math.Cos(theta), math.Sin(theta)
	return [3][3]float64{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

func matMul(a, b [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return out
}

func transpose(a [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = a[i][j]
		}
	}
	return out
}

func applyMat(m [3][3]float64, v core.Vec3) core.Vec3 {
	return core.NewVec3(
		m[0][0]*v.X+m[0][1]*v.Y+m[0][2]*v.Z,
		m[1][0]*v.X+m[1][1]*v.Y+m[1][2]*v.Z,
		m[2][0]*v.X+m[2][1]*v.Y+m[2][2]*v.Z,
	)
}

func (r *Rotate) computeBoundingBox() core.AABB {
	box := r.Primitive.BoundingBox()

	corners := [8]core.Vec3{}
	idx := 0
	for _, x := range []float64{box.Min.X, box.Max.X} {
		for _, y := range []float64{box.Min.Y, box.Max.Y} {
			for _, z := range []float64{box.Min.Z, box.Max.Z} {
				corners[idx] = applyMat(r.m, core.NewVec3(x, y, z))
				idx++
			}
		}
	}

	return core.NewAABBFromPoints(corners[:]...)
}

func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	localOrigin := applyMat(r.mInv, ray.Origin)
	localDirection := applyMat(r.mInv, ray.Direction)
	localRay := core.NewRayAtTime(localOrigin, localDirection, ray.Time)

	rec, ok := r.Primitive.Hit(localRay, tMin, tMax)
	if !ok {
		return nil, false
	}

	rec.Point = applyMat(r.m, rec.Point)
	rec.Normal = applyMat(r.m, rec.Normal)
	return rec, true
}

func (r *Rotate) BoundingBox() core.AABB {
	return r.bbox
}

func (r *Rotate) PDFValue(origin, direction core.Vec3) float64 {
	return r.Primitive.PDFValue(applyMat(r.mInv, origin), applyMat(r.mInv, direction))
}

func (r *Rotate) Random(origin core.Vec3, sampler *core.Sampler) core.Vec3 {
	localDir := r.Primitive.Random(applyMat(r.mInv, origin), sampler)
	return applyMat(r.m, localDir)
}

func (r *Rotate) Lights() []Primitive {
	lights := r.Primitive.Lights()
	wrapped := make([]Primitive, len(lights))
	for i, l := range lights {
		if l == r.Primitive {
			wrapped[i] = r
		} else {
			wrapped[i] = NewRotateWrapping(l, r.m, r.mInv)
		}
	}
	return wrapped
}

// NewRotateWrapping wraps primitive with a precomputed rotation matrix
// pair, used internally when re-wrapping a child light harvested through
// Lights().
func NewRotateWrapping(primitive Primitive, m, mInv [3][3]float64) *Rotate {
	r := &Rotate{Primitive: primitive, m: m, mInv: mInv}
	r.bbox = r.computeBoundingBox()
	return r
}
