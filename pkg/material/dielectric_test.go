package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/corewave/pathtracer/pkg/core"
)

func newTestSampler(seed int64) *core.Sampler {
	return core.NewSampler(rand.New(rand.NewSource(seed)))
}

func TestDielectric_AlwaysScattersSpecularly(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)
	hit := HitContext{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	result, scattered := glass.Scatter(ray, hit, newTestSampler(42))
	if !scattered {
		t.Fatal("dielectric should always scatter")
	}
	if !result.IsSpecular {
		t.Error("dielectric should report a specular scatter")
	}
	if result.PDF != nil {
		t.Error("specular scatter should not carry a PDF")
	}

	expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
	if result.Attenuation != expectedAttenuation {
		t.Errorf("expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
	}
}

func TestDielectric_ProducesBothReflectionAndRefraction(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)
	hit := HitContext{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	hasReflection := false
	hasRefraction := false

	for seed := int64(0); seed < 1000 && (!hasReflection || !hasRefraction); seed++ {
		result, _ := glass.Scatter(ray, hit, newTestSampler(seed))
		direction := result.SpecularRay.Direction.Normalize()
		if direction.Y > -0.5 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasRefraction {
		t.Error("expected refraction in at least some samples")
	}
	if !hasReflection {
		t.Error("expected reflection in at least some samples")
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)
	hit := HitContext{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false, // exiting the material, glass -> air
	}

	cosTheta := -rayDirection.Dot(hit.Normal)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	if 1.5*sinTheta <= 1.0 {
		t.Fatal("test setup error: this angle should cause total internal reflection")
	}

	for i := int64(0); i < 10; i++ {
		result, scattered := glass.Scatter(ray, hit, newTestSampler(i))
		if !scattered {
			t.Fatal("dielectric should always scatter")
		}
		if result.SpecularRay.Direction.Y <= 0 {
			t.Errorf("expected total internal reflection (ray going up), got %v", result.SpecularRay.Direction)
		}
		if math.Abs(result.SpecularRay.Direction.X-rayDirection.X) > 1e-10 {
			t.Errorf("expected X component preserved, got %v", result.SpecularRay.Direction.X)
		}
	}
}

func TestReflectance(t *testing.T) {
	r0 := Reflectance(1.0, 1.0/1.5)
	if r0 < 0.03 || r0 > 0.06 {
		t.Errorf("normal incidence reflectance = %.3f, expected ~0.04", r0)
	}

	r90 := Reflectance(0.0, 1.0/1.5)
	if r90 < 0.95 {
		t.Errorf("grazing incidence reflectance = %.3f, expected close to 1.0", r90)
	}

	r45 := Reflectance(0.707, 1.0/1.5)
	if r45 <= r0 || r90 <= r45 {
		t.Errorf("reflectance should increase with angle: R(0)=%.3f R(45)=%.3f R(90)=%.3f", r0, r45, r90)
	}
}

func TestDielectric_NotEmissive(t *testing.T) {
	glass := NewDielectric(1.5)
	if glass.IsEmissive() {
		t.Error("dielectric should not be emissive")
	}
	if got := glass.Emit(core.Ray{}, HitContext{}); got != (core.Vec3{}) {
		t.Errorf("expected zero emission, got %v", got)
	}
}
