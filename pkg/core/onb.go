package core

import "math"

// ONB is an orthonormal basis (with U×V = -W) built from a single vector,
// used to steer hemisphere/sphere samples around a surface normal.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis whose W axis is the normalized input.
// U and V are chosen arbitrarily but consistently, following the standard
// "pick whichever world axis is least parallel to W" construction.
func NewONB(normal Vec3) ONB {
	w := normal.Normalize()

	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := w.Cross(v)

	return ONB{U: u, V: v, W: w}
}

// Transform maps a vector from basis-local coordinates into world space.
func (b ONB) Transform(v Vec3) Vec3 {
	return b.U.Multiply(v.X).Add(b.V.Multiply(v.Y)).Add(b.W.Multiply(v.Z))
}
