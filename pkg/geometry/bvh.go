package geometry

import (
	"sort"

	"github.com/corewave/pathtracer/pkg/core"
)

// BVHNode is a strict binary tree accelerating ray-primitive intersection.
// It is built by a fixed recipe: sort the primitives by their bounding
// box's minimum on the longest axis of the group, then split at the
// median. N=1 puts the same leaf on both sides; N=2 makes two single-
// primitive leaves. There is no leaf-size threshold or surface-area
// heuristic - the split is always exactly in half.
type BVHNode struct {
	nonSamplable
	Left, Right Primitive
	Box         core.AABB
}

// NewBVH builds a BVH over primitives. Panics if given an empty slice;
// callers are expected to only build a BVH over a non-empty scene.
func NewBVH(primitives []Primitive) *BVHNode {
	if len(primitives) == 0 {
		panic("geometry: NewBVH requires at least one primitive")
	}
	return buildBVH(append([]Primitive(nil), primitives...))
}

func buildBVH(primitives []Primitive) *BVHNode {
	n := len(primitives)

	if n == 1 {
		box := primitives[0].BoundingBox()
		return &BVHNode{Left: primitives[0], Right: primitives[0], Box: box}
	}

	if n == 2 {
		box := primitives[0].BoundingBox().Union(primitives[1].BoundingBox())
		return &BVHNode{Left: primitives[0], Right: primitives[1], Box: box}
	}

	overall := primitives[0].BoundingBox()
	for _, p := range primitives[1:] {
		overall = overall.Union(p.BoundingBox())
	}
	axis := overall.LongestAxis()

	sort.Slice(primitives, func(i, j int) bool {
		return axisMin(primitives[i].BoundingBox(), axis) < axisMin(primitives[j].BoundingBox(), axis)
	})

	mid := n / 2
	left := buildBVH(primitives[:mid])
	right := buildBVH(primitives[mid:])

	return &BVHNode{Left: left, Right: right, Box: left.BoundingBox().Union(right.BoundingBox())}
}

func axisMin(box core.AABB, axis int) float64 {
	switch axis {
	case 0:
		return box.Min.X
	case 1:
		return box.Min.Y
	default:
		return box.Min.Z
	}
}

// Hit traverses the tree: a missed box prunes the whole subtree; the left
// subtree is searched over the full interval, then the right subtree is
// searched with tMax tightened to the left hit's t (if any), so the
// closer of the two always wins without a separate comparison.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)

	rightTMax := tMax
	if hitLeft {
		rightTMax = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(ray, tMin, rightTMax)

	if hitRight {
		return rightHit, true
	}
	if hitLeft {
		return leftHit, true
	}
	return nil, false
}

// BoundingBox returns the node's precomputed bounding box.
func (n *BVHNode) BoundingBox() core.AABB {
	return n.Box
}

// Lights concatenates lights harvested from both subtrees, deduplicating
// the case where a single-primitive leaf stores the same primitive on both
// sides.
func (n *BVHNode) Lights() []Primitive {
	if n.Left == n.Right {
		return n.Left.Lights()
	}
	lights := n.Left.Lights()
	return append(lights, n.Right.Lights()...)
}
