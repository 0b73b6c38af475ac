package scene

import (
	"math"

	"github.com/corewave/pathtracer/pkg/core"
)

// OrbitCamera derives a lookfrom point on a sphere of the given radius
// around target, parameterized by azimuth and elevation in degrees instead
// of a literal point. Useful for scripted turntable scenes.
type OrbitCamera struct {
	Target             core.Vec3
	Radius             float64
	AzimuthDeg         float64
	ElevationDeg       float64
	VFov, AspectRatio  float64
	ImageWidth         int
}

// Camera builds the concrete Camera for the orbit's current azimuth and
// elevation.
func (o OrbitCamera) Camera() Camera {
	az := o.AzimuthDeg * math.Pi / 180
	el := o.ElevationDeg * math.Pi / 180

	offset := core.NewVec3(
		o.Radius*math.Cos(el)*math.Sin(az),
		o.Radius*math.Sin(el),
		o.Radius*math.Cos(el)*math.Cos(az),
	)
	lookFrom := o.Target.Add(offset)

	return NewCamera(lookFrom, o.Target, o.VFov, o.AspectRatio, o.ImageWidth)
}
