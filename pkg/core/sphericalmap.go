package core

import "math"

// DirectionToSphereUV maps a unit direction to spherical (u,v) coordinates:
// v runs pole-to-pole (0 at -y, 1 at +y), u wraps around the equator. Used
// both for sphere surface UVs and for keying a background texture off a
// ray's miss direction.
func DirectionToSphereUV(direction Vec3) Vec2 {
	unit := direction.Normalize()
	theta := math.Acos(-unit.Y)
	phi := math.Atan2(-unit.Z, unit.X) + math.Pi
	return NewVec2(phi/(2.0*math.Pi), theta/math.Pi)
}
