// Package scene assembles primitives, a camera, and harvested lights into
// the frozen, render-ready container the renderer consumes.
package scene

import (
	"fmt"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/geometry"
)

// Scene is the user-facing container: an ordered sequence of primitives,
// their enclosing bbox, and (once built) the BVH and lights list the
// renderer needs. It is mutable only during construction; Build() freezes
// it for rendering.
type Scene struct {
	Camera     Camera
	primitives []geometry.Primitive
	bbox       core.AABB
	hasBBox    bool

	bvh    geometry.Primitive
	lights geometry.Collection
	frozen bool
}

// NewScene creates an empty scene with the given camera.
func NewScene(camera Camera) *Scene {
	return &Scene{Camera: camera}
}

// Add appends a primitive and extends the scene's enclosing bbox. Panics if
// called after Build, since a frozen scene's BVH would silently go stale.
func (s *Scene) Add(p geometry.Primitive) {
	if s.frozen {
		panic("scene: Add called after Build")
	}
	s.primitives = append(s.primitives, p)
	if s.hasBBox {
		s.bbox = s.bbox.Union(p.BoundingBox())
	} else {
		s.bbox = p.BoundingBox()
		s.hasBBox = true
	}
}

// BoundingBox returns the scene's enclosing AABB over every added primitive.
func (s *Scene) BoundingBox() core.AABB {
	return s.bbox
}

// Build constructs the BVH and harvests the transitive set of emissive
// primitives, freezing the scene against further Add calls. It must be
// called exactly once, before the first render.
func (s *Scene) Build() error {
	if s.frozen {
		return fmt.Errorf("scene: Build called twice")
	}
	if len(s.primitives) == 0 {
		return fmt.Errorf("scene: cannot build an empty scene")
	}

	s.bvh = geometry.NewBVH(s.primitives)

	var lights geometry.Collection
	for _, p := range s.primitives {
		lights = append(lights, p.Lights()...)
	}
	s.lights = lights
	s.frozen = true
	return nil
}

// BVH returns the scene's acceleration structure. Panics if called before
// Build.
func (s *Scene) BVH() geometry.Primitive {
	if !s.frozen {
		panic("scene: BVH called before Build")
	}
	return s.bvh
}

// Lights returns the transitive set of emissive primitives harvested at
// Build time, suitable as a pdf.LightSampler target. May be empty.
func (s *Scene) Lights() geometry.Collection {
	if !s.frozen {
		panic("scene: Lights called before Build")
	}
	return s.lights
}
