package geometry

import (
	"testing"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/material"
)

func TestMovingSphere_CenterAtInterpolatesLinearly(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0), 1, material.NewLambertian(core.NewVec3(1, 1, 1)))

	if got := s.CenterAt(0); got != core.NewVec3(0, 0, 0) {
		t.Errorf("CenterAt(0) = %v, want (0,0,0)", got)
	}
	if got := s.CenterAt(1); got != core.NewVec3(10, 0, 0) {
		t.Errorf("CenterAt(1) = %v, want (10,0,0)", got)
	}
	if got := s.CenterAt(0.5); got != core.NewVec3(5, 0, 0) {
		t.Errorf("CenterAt(0.5) = %v, want (5,0,0)", got)
	}
}

func TestMovingSphere_HitUsesRaysTimeToPlaceCenter(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0), 1, material.NewLambertian(core.NewVec3(1, 1, 1)))

	rayAtStart := core.NewRayAtTime(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0)
	rec, ok := s.Hit(rayAtStart, 0.001, 100)
	if !ok {
		t.Fatalf("expected a hit at shutter time 0")
	}
	if rec.Point.X > 0.01 || rec.Point.X < -0.01 {
		t.Errorf("hit point x = %v, want close to 0 at shutter time 0", rec.Point.X)
	}

	rayAtEnd := core.NewRayAtTime(core.NewVec3(10, 0, -5), core.NewVec3(0, 0, 1), 1)
	rec, ok = s.Hit(rayAtEnd, 0.001, 100)
	if !ok {
		t.Fatalf("expected a hit at shutter time 1")
	}
	if rec.Point.X > 10.01 || rec.Point.X < 9.99 {
		t.Errorf("hit point x = %v, want close to 10 at shutter time 1", rec.Point.X)
	}
}

func TestMovingSphere_HitMisses(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(1, 1, 1)))
	ray := core.NewRayAtTime(core.NewVec3(0, 5, -5), core.NewVec3(0, 0, 1), 0)
	if _, ok := s.Hit(ray, 0.001, 100); ok {
		t.Errorf("expected a miss for a ray that passes above the sphere")
	}
}

func TestMovingSphere_BoundingBoxUnionsBothEndpoints(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0), 1, material.NewLambertian(core.NewVec3(1, 1, 1)))
	box := s.BoundingBox()

	if box.Min.X > -0.99 || box.Min.X < -1.0-0.01 {
		t.Errorf("box.Min.X = %v, want close to -1", box.Min.X)
	}
	if box.Max.X > 11.01 || box.Max.X < 10.99 {
		t.Errorf("box.Max.X = %v, want close to 11", box.Max.X)
	}
}

func TestMovingSphere_NeverReturnedAsALight(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0), 1, material.NewDiffuseLight(core.NewVec3(5, 5, 5)))
	if lights := s.Lights(); lights != nil {
		t.Errorf("Lights() = %v, want nil even for an emissive material", lights)
	}
}
