package geometry

import (
	"math/rand"
	"testing"

	"github.com/corewave/pathtracer/pkg/core"
)

func TestConstantMedium_MissesOutsideBoundary(t *testing.T) {
	boundary := NewCube(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), dummyMaterial{})
	medium := NewConstantMedium(boundary, 1.0, dummyMaterial{})

	ray := core.NewRay(core.NewVec3(10, 10, 10), core.NewVec3(0, 0, -1)).
		WithSampler(core.NewSampler(rand.New(rand.NewSource(1))))

	if _, isHit := medium.Hit(ray, 0.001, 1000); isHit {
		t.Error("expected no scatter for a ray that never enters the boundary")
	}
}

func TestConstantMedium_DenseMediumAlmostAlwaysScatters(t *testing.T) {
	boundary := NewCube(core.NewVec3(-10, -10, -10), core.NewVec3(10, 10, 10), dummyMaterial{})
	medium := NewConstantMedium(boundary, 100.0, dummyMaterial{})
	sampler := core.NewSampler(rand.New(rand.NewSource(2)))

	hits := 0
	for i := 0; i < 200; i++ {
		ray := core.NewRay(core.NewVec3(-15, 0, 0), core.NewVec3(1, 0, 0)).WithSampler(sampler)
		if _, isHit := medium.Hit(ray, 0.001, 1000); isHit {
			hits++
		}
	}
	if hits < 190 {
		t.Errorf("expected a dense medium to scatter on nearly every pass, got %d/200", hits)
	}
}

func TestConstantMedium_ScatterPointInsideBoundary(t *testing.T) {
	boundary := NewCube(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), dummyMaterial{})
	medium := NewConstantMedium(boundary, 5.0, dummyMaterial{})
	sampler := core.NewSampler(rand.New(rand.NewSource(3)))

	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0)).WithSampler(sampler)
	rec, isHit := medium.Hit(ray, 0.001, 1000)
	if !isHit {
		t.Skip("no scatter sampled this run; exponential sampling is probabilistic")
	}
	if rec.Point.X < -1-1e-6 || rec.Point.X > 1+1e-6 {
		t.Errorf("expected scatter point inside the boundary, got %v", rec.Point)
	}
}
