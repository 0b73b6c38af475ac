package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/material"
)

// dummyMaterial never scatters or emits; used to isolate geometry tests
// from material behavior.
type dummyMaterial struct{}

func (dummyMaterial) Scatter(rayIn core.Ray, hit material.HitContext, sampler *core.Sampler) (material.ScatterRecord, bool) {
	return material.ScatterRecord{}, false
}
func (dummyMaterial) ScatteringPDF(rayIn core.Ray, hit material.HitContext, scattered core.Ray) float64 {
	return 0
}
func (dummyMaterial) Emit(rayIn core.Ray, hit material.HitContext) core.Vec3 { return core.Vec3{} }
func (dummyMaterial) IsEmissive() bool                                      { return false }

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, dummyMaterial{})
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, dummyMaterial{})

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !hit.Normal.Equals(tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, dummyMaterial{})
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}
	expectedPoint := core.NewVec3(1, 0, 0)
	if !hit.Point.Equals(expectedPoint) {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, dummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0.001, 0.5); isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}
	if hit, isHit := sphere.Hit(ray, 3.5, 1000.0); isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_ClosestIntersection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, dummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected closest intersection at t=1.0, got t=%f", hit.T)
	}
	if !hit.FrontFace {
		t.Error("Expected closest intersection to be front face")
	}
}

func TestSphere_PDFValue_ZeroWhenMissed(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, dummyMaterial{})
	origin := core.NewVec3(0, 0, 0)
	missDir := core.NewVec3(1, 0, 0)

	if pdf := sphere.PDFValue(origin, missDir); pdf != 0 {
		t.Errorf("expected zero PDF for a direction that misses, got %f", pdf)
	}
}

func TestSphere_Random_AlwaysHitsSphere(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, dummyMaterial{})
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 200; i++ {
		dir := sphere.Random(origin, sampler)
		ray := core.NewRay(origin, dir)
		if _, hit := sphere.Hit(ray, 0.001, math.Inf(1)); !hit {
			t.Fatalf("Random direction %v did not hit the sphere it was sampled from", dir)
		}
	}
}

func TestMovingSphere_CenterAtInterpolates(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), 1.0, dummyMaterial{})
	if got := s.CenterAt(0.5); !got.Equals(core.NewVec3(2, 0, 0)) {
		t.Errorf("expected midpoint center, got %v", got)
	}
}

func TestMovingSphere_HitUsesRayTime(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), 1.0, dummyMaterial{})
	ray := core.NewRayAtTime(core.NewVec3(4, 0, 2), core.NewVec3(0, 0, -1), 1.0)

	hit, isHit := s.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("expected hit against sphere at its t=1 position")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("expected t=1.0, got %f", hit.T)
	}
}

func TestMovingSphere_NeverReportsAsLight(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), 1.0, emissiveDummy{})
	if lights := s.Lights(); lights != nil {
		t.Errorf("expected MovingSphere to never report as a light, got %v", lights)
	}
}

type emissiveDummy struct{ dummyMaterial }

func (emissiveDummy) IsEmissive() bool { return true }
