// Package texture implements the spatially-varying color sources materials
// sample: solid colors, checkerboards, an image lookup, hand-built Perlin
// noise (plain/turbulence/marble), a 3D-to-2D UV-slice flattener, and the
// sky gradient background.
package texture

import "github.com/corewave/pathtracer/pkg/core"

// Texture provides a color at a given UV coordinate and 3D point. UV drives
// image-mapped textures; point drives procedural (3D) ones.
type Texture interface {
	Value(uv core.Vec2, point core.Vec3) core.Vec3
}

// Solid is a single uniform color, independent of UV or position.
type Solid struct {
	Color core.Vec3
}

// NewSolid creates a texture that always evaluates to color.
func NewSolid(color core.Vec3) *Solid {
	return &Solid{Color: color}
}

func (s *Solid) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}
