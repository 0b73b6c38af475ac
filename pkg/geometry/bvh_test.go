package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/corewave/pathtracer/pkg/core"
)

func TestBVH_SinglePrimitive(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, 0), 1, dummyMaterial{})
	bvh := NewBVH([]Primitive{s})

	if bvh.Left != bvh.Right {
		t.Error("expected a single-primitive BVH to store the same leaf on both sides")
	}

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if _, hit := bvh.Hit(ray, 0.001, math.Inf(1)); !hit {
		t.Error("expected BVH to hit the sphere")
	}
}

func TestBVH_TwoPrimitives(t *testing.T) {
	a := NewSphere(core.NewVec3(-5, 0, 0), 1, dummyMaterial{})
	b := NewSphere(core.NewVec3(5, 0, 0), 1, dummyMaterial{})
	bvh := NewBVH([]Primitive{a, b})

	if bvh.Left == bvh.Right {
		t.Error("expected two distinct leaves for a 2-primitive BVH")
	}
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var primitives []Primitive
	for i := 0; i < 50; i++ {
		center := core.NewVec3(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
		primitives = append(primitives, NewSphere(center, 0.5, dummyMaterial{}))
	}

	bvh := NewBVH(primitives)
	linear := Collection(primitives)

	for i := 0; i < 200; i++ {
		origin := core.NewVec3(rng.Float64()*30-15, rng.Float64()*30-15, rng.Float64()*30-15)
		dir := core.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		ray := core.NewRay(origin, dir)

		bvhHit, bvhOK := bvh.Hit(ray, 0.001, math.Inf(1))
		linearHit, linearOK := linear.Hit(ray, 0.001, math.Inf(1))

		if bvhOK != linearOK {
			t.Fatalf("hit mismatch for ray %v: bvh=%v linear=%v", ray, bvhOK, linearOK)
		}
		if !bvhOK {
			continue
		}
		if diff := cmp.Diff(linearHit, bvhHit, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Fatalf("BVH hit record diverged from linear scan for ray %v (-linear +bvh):\n%s", ray, diff)
		}
	}
}

func TestBVH_BoundingBoxCoversAllPrimitives(t *testing.T) {
	var primitives []Primitive
	for i := 0; i < 10; i++ {
		primitives = append(primitives, NewSphere(core.NewVec3(float64(i)*3, 0, 0), 1, dummyMaterial{}))
	}
	bvh := NewBVH(primitives)
	box := bvh.BoundingBox()

	for _, p := range primitives {
		pb := p.BoundingBox()
		if pb.Min.X < box.Min.X || pb.Max.X > box.Max.X {
			t.Errorf("BVH bounding box %v does not cover primitive box %v", box, pb)
		}
	}
}

func TestBVH_NeverReportsAsLightItself(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, 0), 1, dummyMaterial{})
	bvh := NewBVH([]Primitive{s})
	if pdf := bvh.PDFValue(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)); pdf != 0 {
		t.Errorf("expected BVH node itself to never be a light-sampling target, got %f", pdf)
	}
}

func TestBVH_LightsHarvestsEmissiveLeaves(t *testing.T) {
	emissive := NewSphere(core.NewVec3(0, 0, 0), 1, emissiveDummy{})
	dark := NewSphere(core.NewVec3(5, 0, 0), 1, dummyMaterial{})
	bvh := NewBVH([]Primitive{emissive, dark})

	lights := bvh.Lights()
	if len(lights) != 1 {
		t.Fatalf("expected exactly one harvested light, got %d", len(lights))
	}
}
