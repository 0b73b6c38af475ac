package scene

import (
	"math"
	"testing"

	"github.com/corewave/pathtracer/pkg/core"
)

func TestOrbitCamera_ZeroElevationStaysOnHorizontalPlane(t *testing.T) {
	orbit := OrbitCamera{
		Target:       core.NewVec3(0, 0, 0),
		Radius:       10,
		AzimuthDeg:   0,
		ElevationDeg: 0,
		VFov:         40,
		AspectRatio:  1,
		ImageWidth:   16,
	}
	cam := orbit.Camera()
	if math.Abs(cam.LookFrom.Y) > 1e-9 {
		t.Errorf("expected lookfrom at elevation 0 to stay on the horizontal plane, got %v", cam.LookFrom)
	}
	if math.Abs(cam.LookFrom.Length()-10) > 1e-9 {
		t.Errorf("expected lookfrom at radius 10, got length %f", cam.LookFrom.Length())
	}
}

func TestOrbitCamera_NinetyElevationLooksStraightDown(t *testing.T) {
	orbit := OrbitCamera{
		Target:       core.NewVec3(1, 1, 1),
		Radius:       5,
		ElevationDeg: 90,
		VFov:         40,
		AspectRatio:  1,
		ImageWidth:   16,
	}
	cam := orbit.Camera()
	if math.Abs(cam.LookFrom.Y-(1+5)) > 1e-6 {
		t.Errorf("expected lookfrom directly above target, got %v", cam.LookFrom)
	}
}

func TestOrbitCamera_AlwaysLooksAtTarget(t *testing.T) {
	orbit := OrbitCamera{
		Target:       core.NewVec3(2, 3, -4),
		Radius:       7,
		AzimuthDeg:   37,
		ElevationDeg: 12,
		VFov:         40,
		AspectRatio:  1,
		ImageWidth:   16,
	}
	cam := orbit.Camera()
	if !cam.LookAt.Equals(orbit.Target) {
		t.Errorf("expected lookat to equal target, got %v", cam.LookAt)
	}
}
